package sw

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/errors"
)

// NIST P-256 key with a fixed scalar, used to pin the identifier
// computation: SHA-256 over the uncompressed point encoding.
const (
	fixedScalarHex = "c477f9f65c22cce20657faa5b2d1d8122336f851a508a1ed04e479c34985bf96"
	fixedSKIHex    = "4fd59c2f3dbd36c619c76bcd77ffc9119cf5c076f6d253620ba361ecfa006d94"
)

func fixedP256Key(t *testing.T) *ecdsa.PrivateKey {
	d, ok := new(big.Int).SetString(fixedScalarHex, 16)
	require.True(t, ok)

	key := new(ecdsa.PrivateKey)
	key.Curve = elliptic.P256()
	key.D = d
	key.PublicKey.X, key.PublicKey.Y = elliptic.P256().ScalarBaseMult(d.Bytes())
	return key
}

func testProvider(t *testing.T) csp.CSP {
	provider, err := NewDefaultSecurityLevelWithKeystore(NewDummyKeyStore())
	require.NoError(t, err)
	return provider
}

func TestECDSAPrivateKeySKIKnownVector(t *testing.T) {
	k, err := NewECDSAPrivateKey(fixedP256Key(t))
	require.NoError(t, err)

	assert.Equal(t, fixedSKIHex, hex.EncodeToString(k.SKI()))
}

func TestECDSAKeySKIUncompressedPointDigest(t *testing.T) {
	// Recompute the identifier from scratch: SHA-256 over 0x04||X||Y with
	// both coordinates zero-padded to the curve's byte length.
	for _, curve := range []elliptic.Curve{elliptic.P256(), elliptic.P384()} {
		lowLevelKey, err := ecdsa.GenerateKey(curve, rand.Reader)
		require.NoError(t, err)

		k, err := NewECDSAPrivateKey(lowLevelKey)
		require.NoError(t, err)

		byteLen := (curve.Params().BitSize + 7) / 8
		raw := make([]byte, 1+2*byteLen)
		raw[0] = 0x04
		lowLevelKey.X.FillBytes(raw[1 : 1+byteLen])
		lowLevelKey.Y.FillBytes(raw[1+byteLen:])

		digest := sha256.Sum256(raw)
		assert.Equal(t, digest[:], k.SKI())
	}
}

func TestECDSAKeySKIMatchesPublicCounterpart(t *testing.T) {
	lowLevelKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	k, err := NewECDSAPrivateKey(lowLevelKey)
	require.NoError(t, err)

	pk, err := k.PublicKey()
	require.NoError(t, err)

	assert.Equal(t, k.SKI(), pk.SKI())
}

func TestECDSAKeyFlags(t *testing.T) {
	lowLevelKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	k, err := NewECDSAPrivateKey(lowLevelKey)
	require.NoError(t, err)

	assert.True(t, k.Private())
	assert.False(t, k.Symmetric())

	pk, err := k.PublicKey()
	require.NoError(t, err)

	assert.False(t, pk.Private())
	assert.False(t, pk.Symmetric())
}

func TestECDSAPublicKeyIdempotent(t *testing.T) {
	lowLevelKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	k, err := NewECDSAPublicKey(&lowLevelKey.PublicKey)
	require.NoError(t, err)

	pk, err := k.PublicKey()
	require.NoError(t, err)
	assert.Same(t, k, pk)
}

func TestNewECDSAPrivateKeyValidation(t *testing.T) {
	_, err := NewECDSAPrivateKey(nil)
	assert.True(t, errors.HasReason(err, errors.InvalidKey))

	noPoint := fixedP256Key(t)
	noPoint.PublicKey.X = nil
	_, err = NewECDSAPrivateKey(noPoint)
	assert.True(t, errors.HasReason(err, errors.InvalidKey))

	noScalar := fixedP256Key(t)
	noScalar.D = nil
	_, err = NewECDSAPrivateKey(noScalar)
	assert.True(t, errors.HasReason(err, errors.InvalidKey))

	noCurve := fixedP256Key(t)
	noCurve.Curve = nil
	_, err = NewECDSAPrivateKey(noCurve)
	assert.True(t, errors.HasReason(err, errors.InvalidKey))
}

func TestNewECDSAPublicKeyValidation(t *testing.T) {
	_, err := NewECDSAPublicKey(nil)
	assert.True(t, errors.HasReason(err, errors.InvalidKey))

	pub := &fixedP256Key(t).PublicKey
	pub.Y = nil
	_, err = NewECDSAPublicKey(pub)
	assert.True(t, errors.HasReason(err, errors.InvalidKey))
}

func TestECDSAKeyHSMHandleUnsupported(t *testing.T) {
	k, err := NewECDSAPrivateKey(fixedP256Key(t))
	require.NoError(t, err)

	_, err = k.HSMHandle()
	assert.True(t, errors.HasReason(err, errors.Unsupported))
}

func TestECDSAPrivateKeyBytesRoundTrip(t *testing.T) {
	provider := testProvider(t)

	k, err := provider.KeyGen(&csp.ECDSAP256KeyGenOpts{Temporary: true})
	require.NoError(t, err)

	material, err := k.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(material), "BEGIN PRIVATE KEY")

	imported, err := provider.KeyImport(material, &csp.ECDSAPrivateKeyImportOpts{Temporary: true})
	require.NoError(t, err)

	assert.Equal(t, k.SKI(), imported.SKI())
}

func TestECDSAPublicKeyBytesRoundTrip(t *testing.T) {
	provider := testProvider(t)

	k, err := provider.KeyGen(&csp.ECDSAP256KeyGenOpts{Temporary: true})
	require.NoError(t, err)

	pk, err := k.PublicKey()
	require.NoError(t, err)

	material, err := pk.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(material), "BEGIN PUBLIC KEY")

	imported, err := provider.KeyImport(material, &csp.ECDSAPKIXPublicKeyImportOpts{Temporary: true})
	require.NoError(t, err)

	assert.Equal(t, pk.SKI(), imported.SKI())
}

func TestSecp256k1KeyRoundTrip(t *testing.T) {
	provider := testProvider(t)

	k, err := provider.KeyGen(&csp.ECDSAP256K1KeyGenOpts{Temporary: true})
	require.NoError(t, err)
	assert.True(t, k.Private())

	scalar, err := k.Bytes()
	require.NoError(t, err)
	assert.Len(t, scalar, 32)

	imported, err := provider.KeyImport(scalar, &csp.ECDSAPrivateKey256K1ImportOpts{Temporary: true})
	require.NoError(t, err)

	assert.Equal(t, k.SKI(), imported.SKI())

	pk, err := k.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, k.SKI(), pk.SKI())
}

func TestKeyDerivReRand(t *testing.T) {
	provider := testProvider(t)

	k, err := provider.KeyGen(&csp.ECDSAP256KeyGenOpts{Temporary: true})
	require.NoError(t, err)

	reRandOpts := &csp.ECDSAReRandKeyOpts{Temporary: true, Expansion: []byte{1, 2, 3}}
	dk, err := provider.KeyDeriv(k, reRandOpts)
	require.NoError(t, err)
	assert.True(t, dk.Private())
	assert.NotEqual(t, k.SKI(), dk.SKI())

	pk, err := k.PublicKey()
	require.NoError(t, err)

	dpk, err := provider.KeyDeriv(pk, reRandOpts)
	require.NoError(t, err)

	// Deriving from the two halves with the same expansion lands on the
	// same public point.
	assert.Equal(t, dk.SKI(), dpk.SKI())
}
