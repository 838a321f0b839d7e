package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/Snapper-Future-Tech/Fabric-sdk/cli/common"
	"github.com/Snapper-Future-Tech/Fabric-sdk/cli/utils"
	"github.com/Snapper-Future-Tech/Fabric-sdk/identity"
	"github.com/Snapper-Future-Tech/Fabric-sdk/util"
)

const (
	DEFAULT_KEYPAIR_FILE_NAME = "./node.key"
)

var (
	NodeKeypairCommand = cli.Command{
		Action:      cli.ShowSubcommandHelp,
		Name:        "nodekeypair",
		Usage:       "Manage nodekeypair",
		ArgsUsage:   "[arguments...]",
		Description: `nodekeypair create keypair and store`,
		Subcommands: []cli.Command{
			{
				Action:    keypairCreate,
				Name:      "add",
				Usage:     "Add a new node keypair",
				ArgsUsage: "[sub-command options]",
				Flags: []cli.Flag{
					utils.SigSchemeFlag,
					utils.DefaultFlag,
					utils.FileFlag,
				},
			},
			{
				Action:    readPubKey,
				Name:      "read",
				Usage:     "Read the public half of a node keypair",
				ArgsUsage: "[sub-command options]",
				Flags: []cli.Flag{
					utils.FileFlag,
				},
			},
			{
				Action:    readSKI,
				Name:      "ski",
				Usage:     "Print the subject key identifier of a node keypair",
				ArgsUsage: "[sub-command options]",
				Flags: []cli.Flag{
					utils.FileFlag,
				},
			},
		},
	}
)

func keypairCreate(ctx *cli.Context) error {
	reader := bufio.NewReader(os.Stdin)
	optionScheme := ""

	optionDefault := ctx.IsSet(utils.GetFlagName(utils.DefaultFlag))
	if !optionDefault {
		optionScheme = checkScheme(ctx, reader)
	} else {
		fmt.Printf("Use default setting '-s SHA256withECDSA' \n")
		fmt.Printf("	signature scheme: %s \n", schemeMap[optionScheme].name)
	}
	optionPath := checkFileName(ctx)
	scheme := schemeMap[optionScheme].code

	if common.FileExisted(optionPath) {
		return fmt.Errorf("keypair file %s already exists", optionPath)
	}

	keyPair := identity.NewKeyPair()
	err := keyPair.Generate(scheme)
	if err != nil {
		fmt.Println(err)
		return fmt.Errorf("new node keypair error:%s", err)
	}

	err = keyPair.Save(optionPath)
	if err != nil {
		fmt.Println(err)
		return err
	}

	fmt.Println("\nCreate node keypair successfully.")
	return nil
}

func readPubKey(ctx *cli.Context) error {
	filePath := checkFileName(ctx)

	keyPair := identity.NewKeyPair()
	err := keyPair.Init(filePath)
	if err != nil {
		return err
	}

	material, err := keyPair.PubKey.Bytes()
	if err != nil {
		return err
	}

	fmt.Println(formatKeyMaterial(material))
	return nil
}

// formatKeyMaterial renders PEM material as-is; raw point encodings
// (secp256k1) are hex-encoded so the output stays printable.
func formatKeyMaterial(material []byte) string {
	if bytes.HasPrefix(material, []byte("-----BEGIN")) {
		return string(material)
	}
	return util.ByteToHex(material)
}

func readSKI(ctx *cli.Context) error {
	filePath := checkFileName(ctx)

	keyPair := identity.NewKeyPair()
	err := keyPair.Init(filePath)
	if err != nil {
		return err
	}

	fmt.Println(util.ByteToHex(keyPair.PriKey.SKI()))
	return nil
}
