package csp

import (
	"crypto"
	"crypto/x509/pkix"
	"hash"
)

// DefaultSelfSignedSubject is the subject callers fall back to when they
// have no name of their own for a bootstrap certificate.
const DefaultSelfSignedSubject = "/CN=self"

// Key represents a cryptographic key handled by a CSP instance.
type Key interface {

	// Bytes returns the canonical PEM serialization of this key:
	// unencrypted PKCS#8 for private keys, PKIX for public keys.
	Bytes() ([]byte, error)

	// SKI returns the subject key identifier of this key, a stable
	// fingerprint computed over the public point only.
	SKI() []byte

	// Symmetric returns true if this key is a symmetric key,
	// false if this key is asymmetric.
	Symmetric() bool

	// Private returns true if this key carries private material.
	Private() bool

	// PublicKey returns the public counterpart of an asymmetric key.
	// A public key returns itself.
	PublicKey() (Key, error)

	// HSMHandle returns the hardware token handle backing this key.
	// Software keys always fail with the Unsupported reason.
	HSMHandle() ([]byte, error)

	// GenerateCSR builds a PKCS#10 request over this key's public point,
	// signed with its private material. The subject is an OpenSSL-slash or
	// RFC 2253 distinguished name string. Returns PEM bytes.
	GenerateCSR(subject string, exts []pkix.Extension) ([]byte, error)

	// GenerateSelfSignedCert builds a short-lived self-signed X.509
	// certificate for bootstrap identities. Returns PEM bytes.
	GenerateSelfSignedCert(subject string) ([]byte, error)
}

type KeyGenOpts interface {
	Algorithm() string

	Ephemeral() bool
}

type KeyDerivOpts interface {
	Algorithm() string

	Ephemeral() bool
}

type KeyImportOpts interface {
	Algorithm() string

	Ephemeral() bool
}

type HashOpts interface {
	Algorithm() string
}

type SignerOpts interface {
	crypto.SignerOpts
}

// CSP is the crypto service provider offering key management and
// sign/verify/hash operations over the keys it holds.
type CSP interface {
	KeyGen(opts KeyGenOpts) (k Key, err error)

	KeyDeriv(k Key, opts KeyDerivOpts) (dk Key, err error)

	KeyImport(raw interface{}, opts KeyImportOpts) (k Key, err error)

	GetKey(ski []byte) (k Key, err error)

	Hash(msg []byte, opts HashOpts) (digest []byte, err error)

	GetHash(opts HashOpts) (h hash.Hash, err error)

	Sign(k Key, digest []byte, opts SignerOpts) (signature []byte, err error)

	Verify(k Key, signature, digest []byte, opts SignerOpts) (valid bool, err error)
}
