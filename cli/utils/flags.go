package utils

import (
	"strings"

	"github.com/urfave/cli"
)

var (
	SigSchemeFlag = cli.StringFlag{
		Name:  "signature-scheme,s",
		Usage: "Specifies the signature scheme `<scheme>`",
	}
	DefaultFlag = cli.BoolFlag{
		Name:  "default,d",
		Usage: "Use default settings to create a new key pair (equal to '-s SHA256withECDSA')",
	}
	FileFlag = cli.StringFlag{
		Name:  "node,w",
		Usage: "Use `<filename>` as the node keypair",
	}
	SubjectFlag = cli.StringFlag{
		Name:  "subject,j",
		Usage: "Distinguished name `<subject>` in slash or comma form, e.g. /CN=self",
	}
	OutFlag = cli.StringFlag{
		Name:  "out,o",
		Usage: "Write the PEM output to `<filename>` instead of stdout",
	}
)

func GetFlagName(flag cli.Flag) string {
	name := flag.GetName()
	if name == "" {
		return ""
	}
	return strings.TrimSpace(strings.Split(name, ",")[0])
}
