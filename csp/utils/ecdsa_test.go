package utils

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalECDSASignatureInvalid(t *testing.T) {
	_, _, err := UnmarshalECDSASignature(nil)
	assert.Error(t, err)

	_, _, err = UnmarshalECDSASignature([]byte{0x30, 0x00})
	assert.Error(t, err)

	raw, err := MarshalECDSASignature(big.NewInt(-1), big.NewInt(1))
	require.NoError(t, err)
	_, _, err = UnmarshalECDSASignature(raw)
	assert.Error(t, err)
}

func TestSignatureToLowS(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("msg"))
	r, s, err := ecdsa.Sign(rand.Reader, key, digest[:])
	require.NoError(t, err)

	// Force the high form, then normalize back.
	highS := new(big.Int).Sub(key.Params().N, s)
	if lowS, _ := IsLowS(&key.PublicKey, highS); lowS {
		highS = s
	}

	raw, err := MarshalECDSASignature(r, highS)
	require.NoError(t, err)

	normalized, err := SignatureToLowS(&key.PublicKey, raw)
	require.NoError(t, err)

	_, s2, err := UnmarshalECDSASignature(normalized)
	require.NoError(t, err)

	lowS, err := IsLowS(&key.PublicKey, s2)
	require.NoError(t, err)
	assert.True(t, lowS)

	assert.True(t, ecdsa.Verify(&key.PublicKey, digest[:], r, s2) ||
		ecdsa.Verify(&key.PublicKey, digest[:], r, new(big.Int).Sub(key.Params().N, s2)))
}

func TestGetCurveHalfOrdersAt(t *testing.T) {
	half := GetCurveHalfOrdersAt(elliptic.P256())
	expected := new(big.Int).Rsh(elliptic.P256().Params().N, 1)
	assert.Zero(t, half.Cmp(expected))

	// Returned value is a copy.
	half.Add(half, big.NewInt(1))
	assert.Zero(t, GetCurveHalfOrdersAt(elliptic.P256()).Cmp(expected))
}
