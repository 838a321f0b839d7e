package logging

var globalLogModule = newLogrusIns()

// LogModule is the logging surface handed to the other packages.
type LogModule interface {
	Info(key, msg string)
	Debug(key, msg string)
	Warning(key, msg string)
	Error(key, msg string)
	Infof(key, format string, args ...interface{})
	Debugf(key, format string, args ...interface{})
	Warningf(key, format string, args ...interface{})
	Errorf(key, format string, args ...interface{})
}

// GetLogIns returns the process-wide log instance. Before InitLogModule
// runs it logs to stderr with default settings, so packages may grab it
// at init time.
func GetLogIns() LogModule {
	return globalLogModule
}

func InitLogModule() {
	globalLogModule.Init()
}
