package common

import "fmt"

func PrintNotice(name string) {
	switch name {
	case "signature-scheme":
		fmt.Printf(`
Select a signature scheme from the following:

  1  SHA256withECDSA (P-256)
  2  SHA384withECDSA (P-384)
  3  SHA256withECDSA (secp256k1)

This can be changed later [default is 1]: `)

	default:
	}
}
