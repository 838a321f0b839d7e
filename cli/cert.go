package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/Snapper-Future-Tech/Fabric-sdk/cli/utils"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/identity"
)

var (
	CertCommand = cli.Command{
		Action:      cli.ShowSubcommandHelp,
		Name:        "cert",
		Usage:       "Generate CSRs and self-signed certificates",
		ArgsUsage:   "[arguments...]",
		Description: `cert issues a PKCS#10 request or a self-signed certificate for the node keypair`,
		Subcommands: []cli.Command{
			{
				Action:    csrGen,
				Name:      "csr",
				Usage:     "Generate a certificate signing request",
				ArgsUsage: "[sub-command options]",
				Flags: []cli.Flag{
					utils.FileFlag,
					utils.SubjectFlag,
					utils.OutFlag,
				},
			},
			{
				Action:    selfSignedGen,
				Name:      "selfsign",
				Usage:     "Generate a self-signed certificate",
				ArgsUsage: "[sub-command options]",
				Flags: []cli.Flag{
					utils.FileFlag,
					utils.SubjectFlag,
					utils.OutFlag,
				},
			},
		},
	}
)

func checkSubject(ctx *cli.Context) string {
	subjectFlag := utils.GetFlagName(utils.SubjectFlag)
	if ctx.IsSet(subjectFlag) {
		return ctx.String(subjectFlag)
	}
	return csp.DefaultSelfSignedSubject
}

func writePEM(ctx *cli.Context, pem []byte) error {
	outFlag := utils.GetFlagName(utils.OutFlag)
	if ctx.IsSet(outFlag) {
		return os.WriteFile(ctx.String(outFlag), pem, 0644)
	}
	fmt.Println(string(pem))
	return nil
}

func csrGen(ctx *cli.Context) error {
	filePath := checkFileName(ctx)

	keyPair := identity.NewKeyPair()
	err := keyPair.Init(filePath)
	if err != nil {
		return err
	}

	csrPEM, err := keyPair.PriKey.GenerateCSR(checkSubject(ctx), nil)
	if err != nil {
		return err
	}

	return writePEM(ctx, csrPEM)
}

func selfSignedGen(ctx *cli.Context) error {
	filePath := checkFileName(ctx)

	keyPair := identity.NewKeyPair()
	err := keyPair.Init(filePath)
	if err != nil {
		return err
	}

	certPEM, err := keyPair.PriKey.GenerateSelfSignedCert(checkSubject(ctx))
	if err != nil {
		return err
	}

	return writePEM(ctx, certPEM)
}
