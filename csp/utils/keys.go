package utils

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
)

// PrivateKeyToPEM converts an EC private key to unencrypted PKCS#8 PEM.
// Passphrase protection is not supported.
func PrivateKeyToPEM(privateKey interface{}, pwd []byte) ([]byte, error) {
	if len(pwd) != 0 {
		return nil, errors.New("encrypted PEM is not supported")
	}
	if privateKey == nil {
		return nil, errors.New("invalid key. It must be different from nil")
	}

	switch k := privateKey.(type) {
	case *ecdsa.PrivateKey:
		if k == nil {
			return nil, errors.New("invalid ecdsa private key. It must be different from nil")
		}
		raw, err := x509.MarshalPKCS8PrivateKey(k)
		if err != nil {
			return nil, errors.Wrap(err, "failed marshalling EC private key to PKCS#8")
		}
		return pem.EncodeToMemory(
			&pem.Block{
				Type:  "PRIVATE KEY",
				Bytes: raw,
			},
		), nil
	default:
		return nil, errors.New("invalid key type. It must be *ecdsa.PrivateKey")
	}
}

// PublicKeyToPEM converts an EC public key to PKIX PEM.
func PublicKeyToPEM(publicKey interface{}, pwd []byte) ([]byte, error) {
	if len(pwd) != 0 {
		return nil, errors.New("encrypted PEM is not supported")
	}
	if publicKey == nil {
		return nil, errors.New("invalid public key. It must be different from nil")
	}

	switch k := publicKey.(type) {
	case *ecdsa.PublicKey:
		if k == nil {
			return nil, errors.New("invalid ecdsa public key. It must be different from nil")
		}
		raw, err := x509.MarshalPKIXPublicKey(k)
		if err != nil {
			return nil, errors.Wrap(err, "failed marshalling EC public key")
		}
		return pem.EncodeToMemory(
			&pem.Block{
				Type:  "PUBLIC KEY",
				Bytes: raw,
			},
		), nil
	default:
		return nil, errors.New("invalid key type. It must be *ecdsa.PublicKey")
	}
}

// PEMtoPrivateKey unmarshals an EC private key from PKCS#8 or SEC 1 PEM.
func PEMtoPrivateKey(raw []byte, pwd []byte) (interface{}, error) {
	if len(raw) == 0 {
		return nil, errors.New("invalid PEM. It must be different from nil")
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.Errorf("failed decoding PEM. Block must be different from nil [% x]", raw)
	}
	if x509.IsEncryptedPEMBlock(block) {
		return nil, errors.New("encrypted PEM is not supported")
	}

	return DERToPrivateKey(block.Bytes)
}

// PEMtoPublicKey unmarshals an EC public key from PKIX PEM.
func PEMtoPublicKey(raw []byte, pwd []byte) (interface{}, error) {
	if len(raw) == 0 {
		return nil, errors.New("invalid PEM. It must be different from nil")
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.Errorf("failed decoding PEM. Block must be different from nil [% x]", raw)
	}
	if x509.IsEncryptedPEMBlock(block) {
		return nil, errors.New("encrypted PEM is not supported")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed parsing PKIX public key")
	}
	if _, ok := key.(*ecdsa.PublicKey); !ok {
		return nil, errors.New("public key type not recognized. Supported keys: [EC]")
	}
	return key, nil
}

// DERToPrivateKey unmarshals an EC private key from PKCS#8 or SEC 1 DER.
func DERToPrivateKey(der []byte) (interface{}, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		if _, ok := key.(*ecdsa.PrivateKey); !ok {
			return nil, errors.New("private key type not recognized. Supported keys: [EC]")
		}
		return key, nil
	}

	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}

	return nil, errors.New("invalid key type. The DER must contain an ecdsa.PrivateKey")
}

// Clone returns a copy of src. A nil slice clones to nil.
func Clone(src []byte) []byte {
	if src == nil {
		return nil
	}
	clone := make([]byte, len(src))
	copy(clone, src)
	return clone
}
