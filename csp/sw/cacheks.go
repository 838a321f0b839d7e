package sw

import (
	"encoding/hex"
	"errors"

	"github.com/bluele/gcache"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
)

const defaultKeyCacheSize = 64

// NewCachedKeyStore decorates next with an LRU cache keyed by hex SKI.
// Lookups hitting the cache skip the backing store entirely; stores are
// write-through.
func NewCachedKeyStore(next csp.KeyStore, size int) (csp.KeyStore, error) {
	if next == nil {
		return nil, errors.New("Invalid KeyStore. It must be different from nil.")
	}
	if size <= 0 {
		size = defaultKeyCacheSize
	}

	return &cachedKeyStore{
		next:  next,
		cache: gcache.New(size).LRU().Build(),
	}, nil
}

type cachedKeyStore struct {
	next  csp.KeyStore
	cache gcache.Cache
}

func (ks *cachedKeyStore) ReadOnly() bool {
	return ks.next.ReadOnly()
}

func (ks *cachedKeyStore) GetKey(ski []byte) (csp.Key, error) {
	if len(ski) == 0 {
		return nil, errors.New("Invalid SKI. Cannot be of zero length.")
	}

	alias := hex.EncodeToString(ski)

	if cached, err := ks.cache.Get(alias); err == nil {
		return cached.(csp.Key), nil
	}

	k, err := ks.next.GetKey(ski)
	if err != nil {
		return nil, err
	}

	ks.cache.Set(alias, k)
	return k, nil
}

func (ks *cachedKeyStore) StoreKey(k csp.Key) error {
	if k == nil {
		return errors.New("Invalid key. It must be different from nil.")
	}

	if err := ks.next.StoreKey(k); err != nil {
		return err
	}

	ks.cache.Set(hex.EncodeToString(k.SKI()), k)
	return nil
}
