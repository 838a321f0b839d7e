package sw

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/errors"
)

func newPrivateKey(t *testing.T) csp.Key {
	lowLevelKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	k, err := NewECDSAPrivateKey(lowLevelKey)
	require.NoError(t, err)
	return k
}

func decodePEM(t *testing.T, raw []byte, blockType string) []byte {
	block, rest := pem.Decode(raw)
	require.NotNil(t, block)
	require.Equal(t, blockType, block.Type)
	require.Empty(t, rest)
	return block.Bytes
}

func TestGenerateCSR(t *testing.T) {
	k := newPrivateKey(t)

	csrPEM, err := k.GenerateCSR(csp.DefaultSelfSignedSubject, nil)
	require.NoError(t, err)

	der := decodePEM(t, csrPEM, "CERTIFICATE REQUEST")
	parsed, err := x509.ParseCertificateRequest(der)
	require.NoError(t, err)

	assert.Equal(t, "self", parsed.Subject.CommonName)
	assert.Equal(t, x509.ECDSAWithSHA256, parsed.SignatureAlgorithm)
	assert.NoError(t, parsed.CheckSignature())
}

func TestGenerateCSRFullSubject(t *testing.T) {
	k := newPrivateKey(t)

	csrPEM, err := k.GenerateCSR("/C=NZ/O=acme/OU=dev/CN=node-1", nil)
	require.NoError(t, err)

	der := decodePEM(t, csrPEM, "CERTIFICATE REQUEST")
	parsed, err := x509.ParseCertificateRequest(der)
	require.NoError(t, err)

	assert.Equal(t, "node-1", parsed.Subject.CommonName)
	assert.Equal(t, []string{"acme"}, parsed.Subject.Organization)
	assert.Equal(t, []string{"dev"}, parsed.Subject.OrganizationalUnit)
	assert.Equal(t, []string{"NZ"}, parsed.Subject.Country)
}

func TestGenerateCSRWithExtensions(t *testing.T) {
	k := newPrivateKey(t)

	// subjectAltName carrying a dNSName.
	sanOID := asn1.ObjectIdentifier{2, 5, 29, 17}
	sanValue, err := asn1.Marshal([]asn1.RawValue{
		{Tag: 2, Class: asn1.ClassContextSpecific, Bytes: []byte("node.example.com")},
	})
	require.NoError(t, err)

	csrPEM, err := k.GenerateCSR("/CN=node", []pkix.Extension{{Id: sanOID, Value: sanValue}})
	require.NoError(t, err)

	der := decodePEM(t, csrPEM, "CERTIFICATE REQUEST")
	parsed, err := x509.ParseCertificateRequest(der)
	require.NoError(t, err)

	assert.Contains(t, parsed.DNSNames, "node.example.com")
}

func TestGenerateCSRBadSubject(t *testing.T) {
	k := newPrivateKey(t)

	_, err := k.GenerateCSR("", nil)
	assert.True(t, errors.HasReason(err, errors.CSRGeneration))

	_, err = k.GenerateCSR("/XX=nope", nil)
	assert.True(t, errors.HasReason(err, errors.CSRGeneration))
}

func TestGenerateSelfSignedCert(t *testing.T) {
	k := newPrivateKey(t)

	before := time.Now()
	certPEM, err := k.GenerateSelfSignedCert(csp.DefaultSelfSignedSubject)
	require.NoError(t, err)
	after := time.Now()

	der := decodePEM(t, certPEM, "CERTIFICATE")
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	assert.Zero(t, cert.SerialNumber.Cmp(big.NewInt(4)))
	assert.Equal(t, "self", cert.Subject.CommonName)
	assert.Equal(t, cert.Subject.String(), cert.Issuer.String())

	assert.Equal(t, x509.KeyUsageDigitalSignature|x509.KeyUsageContentCommitment, cert.KeyUsage)
	assert.Equal(t, []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}, cert.ExtKeyUsage)
	assert.True(t, cert.BasicConstraintsValid)
	assert.False(t, cert.IsCA)

	// Backdated 5s, alive for 60s past issuance.
	assert.Equal(t, 65*time.Second, cert.NotAfter.Sub(cert.NotBefore))
	assert.False(t, cert.NotBefore.After(before))
	assert.False(t, cert.NotAfter.Before(after))

	assert.NoError(t, cert.CheckSignatureFrom(cert))
}

func TestGenerateSelfSignedCertCommaSubject(t *testing.T) {
	k := newPrivateKey(t)

	certPEM, err := k.GenerateSelfSignedCert("CN=node-2,O=acme")
	require.NoError(t, err)

	der := decodePEM(t, certPEM, "CERTIFICATE")
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	assert.Equal(t, "node-2", cert.Subject.CommonName)
	assert.Equal(t, []string{"acme"}, cert.Subject.Organization)
}

func TestGenerateSelfSignedCertBadSubject(t *testing.T) {
	k := newPrivateKey(t)

	_, err := k.GenerateSelfSignedCert("not a dn")
	assert.True(t, errors.HasReason(err, errors.CertGeneration))
}

func TestPublicKeyCannotIssue(t *testing.T) {
	k := newPrivateKey(t)
	pk, err := k.PublicKey()
	require.NoError(t, err)

	_, err = pk.GenerateCSR(csp.DefaultSelfSignedSubject, nil)
	assert.True(t, errors.HasReason(err, errors.NotPrivateKey))

	_, err = pk.GenerateSelfSignedCert(csp.DefaultSelfSignedSubject)
	assert.True(t, errors.HasReason(err, errors.NotPrivateKey))
}

func TestSecp256k1CannotIssue(t *testing.T) {
	provider := testProvider(t)

	k, err := provider.KeyGen(&csp.ECDSAP256K1KeyGenOpts{Temporary: true})
	require.NoError(t, err)

	_, err = k.GenerateCSR(csp.DefaultSelfSignedSubject, nil)
	assert.True(t, errors.HasReason(err, errors.Unsupported))

	_, err = k.GenerateSelfSignedCert(csp.DefaultSelfSignedSubject)
	assert.True(t, errors.HasReason(err, errors.Unsupported))

	pk, err := k.PublicKey()
	require.NoError(t, err)

	_, err = pk.GenerateCSR(csp.DefaultSelfSignedSubject, nil)
	assert.True(t, errors.HasReason(err, errors.NotPrivateKey))
}
