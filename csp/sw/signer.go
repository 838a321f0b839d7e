package sw

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/utils"
)

// P-curve signatures are ASN.1 (r, s) with s normalized to the low form;
// verification rejects high-S signatures as malleable.

func signECDSA(k *ecdsa.PrivateKey, digest []byte, opts csp.SignerOpts) ([]byte, error) {
	r, s, err := ecdsa.Sign(rand.Reader, k, digest)
	if err != nil {
		return nil, err
	}

	s, err = utils.ToLowS(&k.PublicKey, s)
	if err != nil {
		return nil, err
	}

	return utils.MarshalECDSASignature(r, s)
}

func verifyECDSA(k *ecdsa.PublicKey, signature, digest []byte, opts csp.SignerOpts) (bool, error) {
	r, s, err := utils.UnmarshalECDSASignature(signature)
	if err != nil {
		return false, fmt.Errorf("Failed unmashalling signature [%s]", err)
	}

	lowS, err := utils.IsLowS(k, s)
	if err != nil {
		return false, err
	}
	if !lowS {
		return false, fmt.Errorf("Invalid S. Must be smaller than half the order [%s][%s]", s, utils.GetCurveHalfOrdersAt(k.Curve))
	}

	return ecdsa.Verify(k, digest, r, s), nil
}

type ecdsaSigner struct{}

func (s *ecdsaSigner) Sign(k csp.Key, digest []byte, opts csp.SignerOpts) (signature []byte, err error) {
	return signECDSA(k.(*ecdsaPrivateKey).privKey, digest, opts)
}

type ecdsaPrivateKeyVerifier struct{}

func (v *ecdsaPrivateKeyVerifier) Verify(k csp.Key, signature, digest []byte, opts csp.SignerOpts) (valid bool, err error) {
	return verifyECDSA(&(k.(*ecdsaPrivateKey).privKey.PublicKey), signature, digest, opts)
}

type ecdsaPublicKeyKeyVerifier struct{}

func (v *ecdsaPublicKeyKeyVerifier) Verify(k csp.Key, signature, digest []byte, opts csp.SignerOpts) (valid bool, err error) {
	return verifyECDSA(k.(*ecdsaPublicKey).pubKey, signature, digest, opts)
}

// secp256k1 signatures are the 64-byte R||S form with low-S, as produced
// for ledger transactions.

type secp256k1Signer struct{}

func (s *secp256k1Signer) Sign(k csp.Key, digest []byte, opts csp.SignerOpts) (signature []byte, err error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}

	sig := btcecdsa.SignCompact(k.(*secp256k1PrivateKey).privKey, digest, true)

	// SignCompact prepends the recovery byte; callers get plain R||S.
	return sig[1:], nil
}

func verifySecp256k1(pubKey *btcec.PublicKey, signature, digest []byte) (bool, error) {
	if len(signature) != 64 {
		return false, fmt.Errorf("signature must be 64 bytes, got %d", len(signature))
	}
	if len(digest) != 32 {
		return false, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}

	r := new(btcec.ModNScalar)
	s := new(btcec.ModNScalar)
	if overflow := r.SetByteSlice(signature[:32]); overflow {
		return false, errors.New("invalid signature: R overflows")
	}
	if overflow := s.SetByteSlice(signature[32:]); overflow {
		return false, errors.New("invalid signature: S overflows")
	}
	if r.IsZero() || s.IsZero() {
		return false, errors.New("invalid signature: R or S is zero")
	}
	if s.IsOverHalfOrder() {
		return false, errors.New("invalid signature: S must be in the lower half order")
	}

	return btcecdsa.NewSignature(r, s).Verify(digest, pubKey), nil
}

type secp256k1PrivateKeyVerifier struct{}

func (v *secp256k1PrivateKeyVerifier) Verify(k csp.Key, signature, digest []byte, opts csp.SignerOpts) (valid bool, err error) {
	return verifySecp256k1(k.(*secp256k1PrivateKey).privKey.PubKey(), signature, digest)
}

type secp256k1PublicKeyVerifier struct{}

func (v *secp256k1PublicKeyVerifier) Verify(k csp.Key, signature, digest []byte, opts csp.SignerOpts) (valid bool, err error) {
	return verifySecp256k1(k.(*secp256k1PublicKey).pubKey, signature, digest)
}
