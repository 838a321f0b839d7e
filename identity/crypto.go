package identity

import (
	"github.com/juju/errors"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/factory"
	"github.com/Snapper-Future-Tech/Fabric-sdk/util"
)

// Hash digests msg with the hash bound to the local scheme.
func Hash(msg []byte) (digest []byte, err error) {
	provider := factory.GetDefault()

	if msg == nil {
		return nil, errors.New("msg is nil")
	}
	if keyPair == nil {
		return nil, errors.New("key pair not initialized")
	}

	switch keyPair.Scheme {
	case ECDSAP256, SECP256K1:
		return provider.Hash(msg, &csp.SHA256Opts{})
	case ECDSAP384:
		return provider.Hash(msg, &csp.SHA384Opts{})
	default:
		return nil, errors.Errorf("scheme %v not supported", keyPair.Scheme)
	}
}

func Sign(msg []byte) (signature []byte, err error) {
	provider := factory.GetDefault()

	if msg == nil {
		return nil, errors.New("msg is nil")
	}

	digest, err := Hash(msg)
	if err != nil {
		return nil, err
	}

	return provider.Sign(keyPair.PriKey, digest, nil)
}

func Verify(pubKey csp.Key, signature, msg []byte) (valid bool, err error) {
	provider := factory.GetDefault()

	if pubKey == nil || signature == nil || msg == nil {
		return false, errors.New("signature or public key or msg is nil")
	}

	digest, err := Hash(msg)
	if err != nil {
		return false, err
	}

	return provider.Verify(pubKey, signature, digest, nil)
}

// LocalScheme returns the signing scheme of the local key pair.
func LocalScheme() int {
	if keyPair == nil {
		return ECDSAP256
	}
	return keyPair.Scheme
}

// LocalSKIString returns the hex SKI of the local key pair.
func LocalSKIString() string {
	if keyPair == nil || keyPair.PriKey == nil {
		return ""
	}
	return util.ByteToHex(keyPair.PriKey.SKI())
}
