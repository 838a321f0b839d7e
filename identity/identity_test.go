package identity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairGenerateSaveInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.key")

	kp := NewKeyPair()
	require.NoError(t, kp.Generate(ECDSAP256))
	require.True(t, kp.PriKey.Private())
	require.False(t, kp.PubKey.Private())
	require.NoError(t, kp.Save(path))

	ski := kp.PriKey.SKI()

	reloaded := NewKeyPair()
	require.NoError(t, reloaded.Init(path))
	assert.Equal(t, ECDSAP256, reloaded.Scheme)
	assert.Equal(t, ski, reloaded.PriKey.SKI())
	assert.Equal(t, ski, reloaded.PubKey.SKI())
}

func TestKeyPairSecp256k1RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.key")

	kp := NewKeyPair()
	require.NoError(t, kp.Generate(SECP256K1))
	require.NoError(t, kp.Save(path))

	reloaded := NewKeyPair()
	require.NoError(t, reloaded.Init(path))
	assert.Equal(t, kp.PriKey.SKI(), reloaded.PriKey.SKI())
}

func TestSignVerify(t *testing.T) {
	kp := NewKeyPair()
	require.NoError(t, kp.Generate(ECDSAP256))

	msg := []byte("payload")

	signature, err := Sign(msg)
	require.NoError(t, err)

	valid, err := Verify(GetLocalPubKey(), signature, msg)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = Verify(GetLocalPubKey(), signature, []byte("other payload"))
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSignVerifyP384(t *testing.T) {
	kp := NewKeyPair()
	require.NoError(t, kp.Generate(ECDSAP384))

	msg := []byte("payload")

	signature, err := Sign(msg)
	require.NoError(t, err)

	valid, err := Verify(GetLocalPubKey(), signature, msg)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestUnsupportedScheme(t *testing.T) {
	kp := NewKeyPair()
	assert.Error(t, kp.Generate(99))
}

func TestLocalSKIString(t *testing.T) {
	kp := NewKeyPair()
	require.NoError(t, kp.Generate(ECDSAP256))

	ski := LocalSKIString()
	assert.Len(t, ski, 64)
}

func TestInitMissingFile(t *testing.T) {
	kp := NewKeyPair()
	assert.Error(t, kp.Init(filepath.Join(t.TempDir(), "absent.key")))
}

func TestHashSignWithoutKeyPair(t *testing.T) {
	saved := keyPair
	keyPair = nil
	defer func() { keyPair = saved }()

	_, err := Hash([]byte("payload"))
	assert.Error(t, err)

	_, err = Sign([]byte("payload"))
	assert.Error(t, err)

	assert.Nil(t, GetLocalPrivKey())
	assert.Nil(t, GetLocalPubKey())
	assert.Equal(t, ECDSAP256, LocalScheme())
}
