package sw

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
)

func TestNewValidation(t *testing.T) {
	_, err := New(256, "SHA2", nil)
	assert.Error(t, err)

	_, err = New(1234, "SHA2", NewDummyKeyStore())
	assert.Error(t, err)

	_, err = New(256, "MD5", NewDummyKeyStore())
	assert.Error(t, err)
}

func TestUnsupportedOpts(t *testing.T) {
	provider := testProvider(t)

	_, err := provider.KeyGen(nil)
	assert.Error(t, err)

	_, err = provider.KeyImport([]byte{1}, nil)
	assert.Error(t, err)

	_, err = provider.Hash([]byte{1}, nil)
	assert.Error(t, err)

	type bogusOpts struct{ csp.KeyGenOpts }
	_, err = provider.KeyGen(&bogusOpts{})
	assert.Error(t, err)
}

func TestHashFamilies(t *testing.T) {
	provider := testProvider(t)

	msg := []byte("digest me")

	sum := sha256.Sum256(msg)
	digest, err := provider.Hash(msg, &csp.SHA256Opts{})
	require.NoError(t, err)
	assert.Equal(t, sum[:], digest)

	sum384 := sha512.Sum384(msg)
	digest, err = provider.Hash(msg, &csp.SHA384Opts{})
	require.NoError(t, err)
	assert.Equal(t, sum384[:], digest)

	sum3 := sha3.Sum256(msg)
	digest, err = provider.Hash(msg, &csp.SHA3_256Opts{})
	require.NoError(t, err)
	assert.Equal(t, sum3[:], digest)

	// Default family follows the configured security level.
	digest, err = provider.Hash(msg, &csp.SHAOpts{})
	require.NoError(t, err)
	assert.Equal(t, sum[:], digest)

	h, err := provider.GetHash(&csp.SHA384Opts{})
	require.NoError(t, err)
	h.Write(msg)
	assert.Equal(t, sum384[:], h.Sum(nil))
}

func TestKeyGenPersistsToKeyStore(t *testing.T) {
	provider, err := NewDefaultSecurityLevel(t.TempDir())
	require.NoError(t, err)

	k, err := provider.KeyGen(&csp.ECDSAP256KeyGenOpts{Temporary: false})
	require.NoError(t, err)

	loaded, err := provider.GetKey(k.SKI())
	require.NoError(t, err)
	assert.Equal(t, k.SKI(), loaded.SKI())
	assert.True(t, loaded.Private())
}

func TestX509CertificateImport(t *testing.T) {
	provider := testProvider(t)

	k, err := provider.KeyGen(&csp.ECDSAP256KeyGenOpts{Temporary: true})
	require.NoError(t, err)

	certPEM, err := k.GenerateSelfSignedCert(csp.DefaultSelfSignedSubject)
	require.NoError(t, err)

	block, _ := pem.Decode(certPEM)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)

	imported, err := provider.KeyImport(cert, &csp.X509PublicKeyImportOpts{Temporary: true})
	require.NoError(t, err)

	assert.False(t, imported.Private())
	assert.Equal(t, k.SKI(), imported.SKI())
}
