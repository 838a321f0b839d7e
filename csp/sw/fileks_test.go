package sw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
)

func TestFileKeyStoreRoundTrip(t *testing.T) {
	ks, err := NewFileBasedKeyStore(nil, t.TempDir(), false)
	require.NoError(t, err)
	assert.False(t, ks.ReadOnly())

	k, err := NewECDSAPrivateKey(fixedP256Key(t))
	require.NoError(t, err)

	require.NoError(t, ks.StoreKey(k))

	loaded, err := ks.GetKey(k.SKI())
	require.NoError(t, err)
	assert.Equal(t, k.SKI(), loaded.SKI())
	assert.True(t, loaded.Private())
}

func TestFileKeyStorePublicKey(t *testing.T) {
	ks, err := NewFileBasedKeyStore(nil, t.TempDir(), false)
	require.NoError(t, err)

	k, err := NewECDSAPrivateKey(fixedP256Key(t))
	require.NoError(t, err)

	pk, err := k.PublicKey()
	require.NoError(t, err)

	require.NoError(t, ks.StoreKey(pk))

	loaded, err := ks.GetKey(pk.SKI())
	require.NoError(t, err)
	assert.Equal(t, pk.SKI(), loaded.SKI())
	assert.False(t, loaded.Private())
}

func TestFileKeyStoreSecp256k1(t *testing.T) {
	ks, err := NewFileBasedKeyStore(nil, t.TempDir(), false)
	require.NoError(t, err)

	gen := &secp256k1KeyGenerator{}
	k, err := gen.KeyGen(&csp.ECDSAP256K1KeyGenOpts{Temporary: true})
	require.NoError(t, err)

	require.NoError(t, ks.StoreKey(k))

	loaded, err := ks.GetKey(k.SKI())
	require.NoError(t, err)
	assert.Equal(t, k.SKI(), loaded.SKI())
	assert.True(t, loaded.Private())
}

func TestFileKeyStoreReadOnly(t *testing.T) {
	dir := t.TempDir()

	rw, err := NewFileBasedKeyStore(nil, dir, false)
	require.NoError(t, err)

	k, err := NewECDSAPrivateKey(fixedP256Key(t))
	require.NoError(t, err)
	require.NoError(t, rw.StoreKey(k))

	ro, err := NewFileBasedKeyStore(nil, dir, true)
	require.NoError(t, err)
	assert.True(t, ro.ReadOnly())
	assert.Error(t, ro.StoreKey(k))

	loaded, err := ro.GetKey(k.SKI())
	require.NoError(t, err)
	assert.Equal(t, k.SKI(), loaded.SKI())
}

func TestFileKeyStoreMissingKey(t *testing.T) {
	ks, err := NewFileBasedKeyStore(nil, t.TempDir(), false)
	require.NoError(t, err)

	_, err = ks.GetKey([]byte{0xde, 0xad})
	assert.Error(t, err)

	_, err = ks.GetKey(nil)
	assert.Error(t, err)
}
