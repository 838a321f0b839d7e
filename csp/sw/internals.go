package sw

import (
	"hash"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
)

type KeyGenerator interface {
	KeyGen(opts csp.KeyGenOpts) (k csp.Key, err error)
}

type KeyDeriver interface {
	KeyDeriv(k csp.Key, opts csp.KeyDerivOpts) (dk csp.Key, err error)
}

type KeyImporter interface {
	KeyImport(raw interface{}, opts csp.KeyImportOpts) (k csp.Key, err error)
}

type Signer interface {
	Sign(k csp.Key, digest []byte, opts csp.SignerOpts) (signature []byte, err error)
}

type Verifier interface {
	Verify(k csp.Key, signature, digest []byte, opts csp.SignerOpts) (valid bool, err error)
}

type Hasher interface {
	Hash(msg []byte, opts csp.HashOpts) (hash []byte, err error)

	GetHash(opts csp.HashOpts) (h hash.Hash, err error)
}
