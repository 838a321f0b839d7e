package sw

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"fmt"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/errors"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/utils"
)

// ecdsaPrivateKey and ecdsaPublicKey are the two cases of an EC key pair.
// Public-only status is carried by the type, never by a nil field.
type ecdsaPrivateKey struct {
	privKey *ecdsa.PrivateKey
}

// NewECDSAPrivateKey wraps an EC private key handle. The handle must carry
// a curve, a full public point and the private scalar.
func NewECDSAPrivateKey(privKey *ecdsa.PrivateKey) (csp.Key, error) {
	if privKey == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. It must be different from nil")
	}
	if privKey.Curve == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. Curve must be different from nil")
	}
	if privKey.PublicKey.X == nil || privKey.PublicKey.Y == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. Public point must be present")
	}
	if privKey.D == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. Private scalar must be present")
	}
	return &ecdsaPrivateKey{privKey}, nil
}

func (k *ecdsaPrivateKey) Bytes() (raw []byte, err error) {
	raw, err = utils.PrivateKeyToPEM(k.privKey, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed marshalling key [%s]", err)
	}
	return
}

// SKI is always computed over the public point, so a private key and its
// public counterpart share the same identifier.
func (k *ecdsaPrivateKey) SKI() (ski []byte) {
	if k.privKey == nil {
		return nil
	}

	raw := elliptic.Marshal(k.privKey.Curve, k.privKey.PublicKey.X, k.privKey.PublicKey.Y)

	hash := sha256.New()
	hash.Write(raw)
	return hash.Sum(nil)
}

func (k *ecdsaPrivateKey) Symmetric() bool {
	return false
}

func (k *ecdsaPrivateKey) Private() bool {
	return true
}

func (k *ecdsaPrivateKey) PublicKey() (csp.Key, error) {
	return NewECDSAPublicKey(&k.privKey.PublicKey)
}

func (k *ecdsaPrivateKey) HSMHandle() ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.Unsupported, "no hardware handle backs a software key")
}

type ecdsaPublicKey struct {
	pubKey *ecdsa.PublicKey
}

// NewECDSAPublicKey wraps an EC public key handle.
func NewECDSAPublicKey(pubKey *ecdsa.PublicKey) (csp.Key, error) {
	if pubKey == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. It must be different from nil")
	}
	if pubKey.Curve == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. Curve must be different from nil")
	}
	if pubKey.X == nil || pubKey.Y == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. Public point must be present")
	}
	return &ecdsaPublicKey{pubKey}, nil
}

func (k *ecdsaPublicKey) Bytes() (raw []byte, err error) {
	raw, err = utils.PublicKeyToPEM(k.pubKey, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed marshalling key [%s]", err)
	}
	return
}

func (k *ecdsaPublicKey) SKI() (ski []byte) {
	if k.pubKey == nil {
		return nil
	}

	raw := elliptic.Marshal(k.pubKey.Curve, k.pubKey.X, k.pubKey.Y)

	hash := sha256.New()
	hash.Write(raw)
	return hash.Sum(nil)
}

func (k *ecdsaPublicKey) Symmetric() bool {
	return false
}

func (k *ecdsaPublicKey) Private() bool {
	return false
}

func (k *ecdsaPublicKey) PublicKey() (csp.Key, error) {
	return k, nil
}

func (k *ecdsaPublicKey) HSMHandle() ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.Unsupported, "no hardware handle backs a software key")
}
