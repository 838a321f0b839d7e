package sw

import (
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"time"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/errors"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/utils"
)

// Self-signed certificates issued here back ephemeral bootstrap
// identities, not CA issuance: the serial is a fixed constant and the
// validity window barely outlives the signing operation itself.
const (
	selfSignedSerial = 4

	selfSignedBackdate = 5 * time.Second
	selfSignedLifetime = 60 * time.Second
)

func (k *ecdsaPrivateKey) GenerateCSR(subject string, exts []pkix.Extension) ([]byte, error) {
	name, err := utils.ParseDN(subject)
	if err != nil {
		return nil, errors.Error(errors.CSP, errors.CSRGeneration, "failed parsing subject name [%s]", subject).WrapError(err)
	}

	template := x509.CertificateRequest{
		Subject:            name,
		SignatureAlgorithm: x509.ECDSAWithSHA256,
		ExtraExtensions:    exts,
	}

	der, err := x509.CreateCertificateRequest(rand.Reader, &template, k.privKey)
	if err != nil {
		return nil, errors.Error(errors.CSP, errors.CSRGeneration, "failed creating certificate request for [%s]", subject).WrapError(err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE REQUEST", Bytes: der}), nil
}

func (k *ecdsaPrivateKey) GenerateSelfSignedCert(subject string) ([]byte, error) {
	name, err := utils.ParseDN(subject)
	if err != nil {
		return nil, errors.Error(errors.CSP, errors.CertGeneration, "failed parsing subject name [%s]", subject).WrapError(err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          big.NewInt(selfSignedSerial),
		Subject:               name,
		NotBefore:             now.Add(-selfSignedBackdate),
		NotAfter:              now.Add(selfSignedLifetime),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageContentCommitment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		IsCA:                  false,
		SignatureAlgorithm:    x509.ECDSAWithSHA256,
	}

	// Template doubles as issuer: subject and issuer must match.
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &k.privKey.PublicKey, k.privKey)
	if err != nil {
		return nil, errors.Error(errors.CSP, errors.CertGeneration, "failed creating self-signed certificate for [%s]", subject).WrapError(err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), nil
}

func (k *ecdsaPublicKey) GenerateCSR(subject string, exts []pkix.Extension) ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.NotPrivateKey, "CSR generation requires a private key")
}

func (k *ecdsaPublicKey) GenerateSelfSignedCert(subject string) ([]byte, error) {
	return nil, errors.Error(errors.CSP, errors.NotPrivateKey, "certificate generation requires a private key")
}
