package sw

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/x509"
	"errors"
	"fmt"
	"reflect"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/utils"
)

var pemHeader = []byte("-----BEGIN")

type ecdsaPKIXPublicKeyImportOptsKeyImporter struct{}

func (ki *ecdsaPKIXPublicKeyImportOptsKeyImporter) KeyImport(raw interface{}, opts csp.KeyImportOpts) (k csp.Key, err error) {
	der, ok := raw.([]byte)
	if !ok {
		return nil, errors.New("Invalid raw material. Expected byte array.")
	}
	if len(der) == 0 {
		return nil, errors.New("Invalid raw. It must not be nil.")
	}

	var lowLevelKey interface{}
	if bytes.Contains(der, pemHeader) {
		lowLevelKey, err = utils.PEMtoPublicKey(der, nil)
	} else {
		lowLevelKey, err = x509.ParsePKIXPublicKey(der)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed converting PKIX to public key [%s]", err)
	}

	ecdsaPK, ok := lowLevelKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("Failed casting to ECDSA public key. Invalid raw material.")
	}

	return NewECDSAPublicKey(ecdsaPK)
}

type ecdsaPrivateKeyImportOptsKeyImporter struct{}

func (ki *ecdsaPrivateKeyImportOptsKeyImporter) KeyImport(raw interface{}, opts csp.KeyImportOpts) (k csp.Key, err error) {
	material, ok := raw.([]byte)
	if !ok {
		return nil, errors.New("Invalid raw material. Expected byte array.")
	}
	if len(material) == 0 {
		return nil, errors.New("Invalid raw. It must not be nil.")
	}

	var lowLevelKey interface{}
	if bytes.Contains(material, pemHeader) {
		lowLevelKey, err = utils.PEMtoPrivateKey(material, nil)
	} else {
		lowLevelKey, err = utils.DERToPrivateKey(material)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed converting to private key [%s]", err)
	}

	ecdsaSK, ok := lowLevelKey.(*ecdsa.PrivateKey)
	if !ok {
		return nil, errors.New("Failed casting to ECDSA private key. Invalid raw material.")
	}

	return NewECDSAPrivateKey(ecdsaSK)
}

type ecdsaGoPublicKeyImportOptsKeyImporter struct{}

func (ki *ecdsaGoPublicKeyImportOptsKeyImporter) KeyImport(raw interface{}, opts csp.KeyImportOpts) (k csp.Key, err error) {
	lowLevelKey, ok := raw.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("Invalid raw material. Expected *ecdsa.PublicKey.")
	}

	return NewECDSAPublicKey(lowLevelKey)
}

type x509PublicKeyImportOptsKeyImporter struct {
	provider *impl
}

func (ki *x509PublicKeyImportOptsKeyImporter) KeyImport(raw interface{}, opts csp.KeyImportOpts) (k csp.Key, err error) {
	var x509Cert *x509.Certificate
	switch cert := raw.(type) {
	case *x509.Certificate:
		x509Cert = cert
	case []byte:
		x509Cert, err = utils.DERToX509Certificate(cert)
		if err != nil {
			return nil, fmt.Errorf("Failed parsing X.509 certificate [%s]", err)
		}
	default:
		return nil, errors.New("Invalid raw material. Expected *x509.Certificate or DER bytes.")
	}

	pk := x509Cert.PublicKey

	switch pk.(type) {
	case *ecdsa.PublicKey:
		return ki.provider.keyImporters[reflect.TypeOf(&csp.ECDSAGoPublicKeyImportOpts{})].KeyImport(
			pk,
			&csp.ECDSAGoPublicKeyImportOpts{Temporary: opts.Ephemeral()})
	default:
		return nil, errors.New("Certificate's public key type not recognized. Supported keys: [ECDSA]")
	}
}

type secp256k1PrivateKeyImportOptsKeyImporter struct{}

func (ki *secp256k1PrivateKeyImportOptsKeyImporter) KeyImport(raw interface{}, opts csp.KeyImportOpts) (k csp.Key, err error) {
	scalar, ok := raw.([]byte)
	if !ok {
		return nil, errors.New("Invalid raw material. Expected byte array.")
	}
	if len(scalar) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(scalar))
	}

	privKey, _ := btcec.PrivKeyFromBytes(scalar)
	if privKey == nil {
		return nil, errors.New("Failed parsing secp256k1 private key.")
	}

	return NewSecp256k1PrivateKey(privKey)
}
