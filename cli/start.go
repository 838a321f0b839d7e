package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/Snapper-Future-Tech/Fabric-sdk/access/rest"
	"github.com/Snapper-Future-Tech/Fabric-sdk/config"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/factory"
	"github.com/Snapper-Future-Tech/Fabric-sdk/identity"
	"github.com/Snapper-Future-Tech/Fabric-sdk/logging"
	"github.com/Snapper-Future-Tech/Fabric-sdk/util"
)

var (
	CliLogPath = cli.StringFlag{
		Name:  "logPath",
		Value: "./",
		Usage: "log path",
	}
	CliLogLevel = cli.StringFlag{
		Name:  "logLevel",
		Value: "info",
		Usage: "log level(info/debug/error/warning)",
	}
	CliConfigPath = cli.StringFlag{
		Name:  "configPath",
		Value: "./peer.json",
		Usage: "config path",
	}
)

func Init() {
	app := cli.NewApp()
	app.Action = Start
	app.Name = "fabric-sdk"
	app.Usage = "ECDSA key, CSR and certificate service"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		CliLogPath,
		CliConfigPath,
		CliLogLevel,
	}

	app.Commands = []cli.Command{
		NodeKeypairCommand,
		CertCommand,
	}

	app.Run(os.Args)
}

func Start(ctx *cli.Context) {
	configFile := ctx.GlobalString(CliConfigPath.Name)

	config.LoadConfig(configFile)

	if ctx.IsSet(CliLogPath.Name) {
		logPath := ctx.GlobalString(CliLogPath.Name)
		config.Config.Log.Path = logPath
	}

	if ctx.IsSet(CliLogLevel.Name) {
		logLevel := ctx.GlobalString(CliLogLevel.Name)
		config.Config.Log.Level = logLevel
	}

	fmt.Printf("logPath=%s logLevel=%s\n",
		config.Config.Log.Path, config.Config.Log.Level)

	logging.InitLogModule()

	err := factory.InitFactories(&factory.FactoryOpts{
		ProviderName: "SW",
		SwOpts: &factory.SwOpts{
			SecLevel:   config.Config.SecurityLevel,
			HashFamily: config.Config.HashFamily,
			FileKeystore: &factory.FileKeystoreOpts{
				KeyStorePath: config.Config.KeyStorePath,
				KeyCacheSize: config.Config.KeyCacheSize,
			},
		},
	})
	if err != nil {
		panic("csp factory err: " + err.Error())
	}

	keyPair := identity.NewKeyPair()
	if util.PathExists(config.Config.KeyPairPath) {
		err = keyPair.Init(config.Config.KeyPairPath)
	} else {
		err = keyPair.Generate(identity.ECDSAP256)
		if err == nil {
			err = keyPair.Save(config.Config.KeyPairPath)
		}
	}
	if err != nil {
		panic("identity err: " + err.Error())
	}

	rest.StartRESTServer()
}
