package sw

import (
	"crypto/sha256"
	"crypto/x509/pkix"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/errors"
)

// secp256k1 keys serve ledger identities. The curve has no X.509
// algorithm identifier in crypto/x509, so CSR/certificate generation and
// PKCS#8 serialization are unsupported for this variant; serialization is
// the raw scalar (private) and the compressed point (public).
type secp256k1PrivateKey struct {
	privKey *btcec.PrivateKey
}

func NewSecp256k1PrivateKey(privKey *btcec.PrivateKey) (csp.Key, error) {
	if privKey == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. It must be different from nil")
	}
	return &secp256k1PrivateKey{privKey}, nil
}

func (k *secp256k1PrivateKey) Bytes() (raw []byte, err error) {
	return k.privKey.Serialize(), nil
}

func (k *secp256k1PrivateKey) SKI() (ski []byte) {
	if k.privKey == nil {
		return nil
	}

	raw := k.privKey.PubKey().SerializeUncompressed()

	hash := sha256.New()
	hash.Write(raw)
	return hash.Sum(nil)
}

func (k *secp256k1PrivateKey) Symmetric() bool {
	return false
}

func (k *secp256k1PrivateKey) Private() bool {
	return true
}

func (k *secp256k1PrivateKey) PublicKey() (csp.Key, error) {
	return NewSecp256k1PublicKey(k.privKey.PubKey())
}

func (k *secp256k1PrivateKey) HSMHandle() ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.Unsupported, "no hardware handle backs a software key")
}

func (k *secp256k1PrivateKey) GenerateCSR(subject string, exts []pkix.Extension) ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.Unsupported, "secp256k1 keys cannot sign X.509 structures")
}

func (k *secp256k1PrivateKey) GenerateSelfSignedCert(subject string) ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.Unsupported, "secp256k1 keys cannot sign X.509 structures")
}

type secp256k1PublicKey struct {
	pubKey *btcec.PublicKey
}

func NewSecp256k1PublicKey(pubKey *btcec.PublicKey) (csp.Key, error) {
	if pubKey == nil {
		return nil, errors.Error(errors.CSP, errors.InvalidKey, "invalid key handle. It must be different from nil")
	}
	return &secp256k1PublicKey{pubKey}, nil
}

func (k *secp256k1PublicKey) Bytes() (raw []byte, err error) {
	return k.pubKey.SerializeCompressed(), nil
}

func (k *secp256k1PublicKey) SKI() (ski []byte) {
	if k.pubKey == nil {
		return nil
	}

	raw := k.pubKey.SerializeUncompressed()

	hash := sha256.New()
	hash.Write(raw)
	return hash.Sum(nil)
}

func (k *secp256k1PublicKey) Symmetric() bool {
	return false
}

func (k *secp256k1PublicKey) Private() bool {
	return false
}

func (k *secp256k1PublicKey) PublicKey() (csp.Key, error) {
	return k, nil
}

func (k *secp256k1PublicKey) HSMHandle() ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.Unsupported, "no hardware handle backs a software key")
}

func (k *secp256k1PublicKey) GenerateCSR(subject string, exts []pkix.Extension) ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.NotPrivateKey, "CSR generation requires a private key")
}

func (k *secp256k1PublicKey) GenerateSelfSignedCert(subject string) ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.NotPrivateKey, "certificate generation requires a private key")
}
