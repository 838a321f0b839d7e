package sw

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
)

type ecdsaKeyGenerator struct {
	curve elliptic.Curve
}

func (kg *ecdsaKeyGenerator) KeyGen(opts csp.KeyGenOpts) (k csp.Key, err error) {
	privKey, err := ecdsa.GenerateKey(kg.curve, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("Failed generating ECDSA key for [%v]: [%s]", kg.curve, err)
	}

	return NewECDSAPrivateKey(privKey)
}

type secp256k1KeyGenerator struct{}

func (kg *secp256k1KeyGenerator) KeyGen(opts csp.KeyGenOpts) (k csp.Key, err error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("Failed generating secp256k1 key: [%s]", err)
	}

	return NewSecp256k1PrivateKey(privKey)
}
