package logging

import (
	"bufio"
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"

	"github.com/Snapper-Future-Tech/Fabric-sdk/config"
	"github.com/Snapper-Future-Tech/Fabric-sdk/util"
)

type logrusIns struct {
	*log.Logger
}

func newLogrusIns() *logrusIns {
	return &logrusIns{Logger: log.New()}
}

func (li *logrusIns) Init() {
	if !util.PathExists(config.Config.Log.Path) {
		os.Mkdir(config.Config.Log.Path, os.ModePerm)
	}
	baseLogPath := path.Join(config.Config.Log.Path, "log")
	writer, err := rotatelogs.New(
		baseLogPath+".%Y%m%d%H%M%S",
		rotatelogs.WithLinkName(baseLogPath),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		panic("config logrus err: " + err.Error())
	}

	logNew := log.New()
	lfHook := lfshook.NewHook(lfshook.WriterMap{
		log.DebugLevel: writer,
		log.InfoLevel:  writer,
		log.WarnLevel:  writer,
		log.ErrorLevel: writer,
		log.FatalLevel: writer,
		log.PanicLevel: writer,
	}, &log.JSONFormatter{})

	logNew.SetLevel(LevelConv(config.Config.Log.Level))

	src, err := os.OpenFile(os.DevNull, os.O_APPEND|os.O_WRONLY|os.O_CREATE, os.ModeAppend)
	if err != nil {
		panic("config openfile err: " + err.Error())
	}
	writer1 := bufio.NewWriter(src)

	logNew.SetOutput(writer1)

	logNew.AddHook(lfHook)

	li.Logger = logNew
}

func LevelConv(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	panic("log level invalid,level: " + level)
}

func (li *logrusIns) Debug(key, msg string) {
	li.WithFields(log.Fields{"type": key}).Debug(msg)
}

func (li *logrusIns) Info(key, msg string) {
	li.WithFields(log.Fields{"type": key}).Info(msg)
}

func (li *logrusIns) Warning(key, msg string) {
	li.WithFields(log.Fields{"type": key}).Warning(msg)
}

func (li *logrusIns) Error(key, msg string) {
	li.WithFields(log.Fields{"type": key}).Error(msg)
}

func (li *logrusIns) Debugf(key, format string, args ...interface{}) {
	li.WithFields(log.Fields{"type": key}).Debugf(format, args...)
}

func (li *logrusIns) Infof(key, format string, args ...interface{}) {
	li.WithFields(log.Fields{"type": key}).Infof(format, args...)
}

func (li *logrusIns) Warningf(key, format string, args ...interface{}) {
	li.WithFields(log.Fields{"type": key}).Warningf(format, args...)
}

func (li *logrusIns) Errorf(key, format string, args ...interface{}) {
	li.WithFields(log.Fields{"type": key}).Errorf(format, args...)
}
