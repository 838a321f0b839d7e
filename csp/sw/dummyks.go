package sw

import (
	"errors"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
)

// NewDummyKeyStore returns the keystore used when keys are never meant
// to leave memory, such as the boot provider for ephemeral key material.
// Every read misses and every write is rejected.
func NewDummyKeyStore() csp.KeyStore {
	return &dummyKeyStore{}
}

type dummyKeyStore struct {
}

func (ks *dummyKeyStore) ReadOnly() bool {
	return true
}

func (ks *dummyKeyStore) GetKey(ski []byte) (k csp.Key, err error) {
	return nil, errors.New("key not found, keystore holds no keys")
}

func (ks *dummyKeyStore) StoreKey(k csp.Key) (err error) {
	return errors.New("cannot store key, keystore is read-only")
}
