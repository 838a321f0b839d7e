package sw

import (
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"reflect"

	"golang.org/x/crypto/sha3"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/errors"
	"github.com/Snapper-Future-Tech/Fabric-sdk/logging"
)

var (
	logger logging.LogModule
)

func init() {
	logger = logging.GetLogIns()
}

const LOGTABLE_CSP string = "csp"

// NewDefaultSecurityLevel returns a software CSP at security level 256
// with SHA2, backed by a file keystore at the given path.
func NewDefaultSecurityLevel(keyStorePath string) (csp.CSP, error) {
	ks := &fileBasedKeyStore{}
	if err := ks.Init(nil, keyStorePath, false); err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed initializing key store at [%v]", keyStorePath).WrapError(err)
	}

	return New(256, "SHA2", ks)
}

func NewDefaultSecurityLevelWithKeystore(keyStore csp.KeyStore) (csp.CSP, error) {
	return New(256, "SHA2", keyStore)
}

func New(securityLevel int, hashFamily string, keyStore csp.KeyStore) (csp.CSP, error) {
	conf := &config{}
	err := conf.setSecurityLevel(securityLevel, hashFamily)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed initializing configuration at [%v,%v]", securityLevel, hashFamily).WrapError(err)
	}

	if keyStore == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid csp.KeyStore instance. It must be different from nil.")
	}

	signers := make(map[reflect.Type]Signer)
	signers[reflect.TypeOf(&ecdsaPrivateKey{})] = &ecdsaSigner{}
	signers[reflect.TypeOf(&secp256k1PrivateKey{})] = &secp256k1Signer{}

	verifiers := make(map[reflect.Type]Verifier)
	verifiers[reflect.TypeOf(&ecdsaPrivateKey{})] = &ecdsaPrivateKeyVerifier{}
	verifiers[reflect.TypeOf(&ecdsaPublicKey{})] = &ecdsaPublicKeyKeyVerifier{}
	verifiers[reflect.TypeOf(&secp256k1PrivateKey{})] = &secp256k1PrivateKeyVerifier{}
	verifiers[reflect.TypeOf(&secp256k1PublicKey{})] = &secp256k1PublicKeyVerifier{}

	hashers := make(map[reflect.Type]Hasher)
	hashers[reflect.TypeOf(&csp.SHAOpts{})] = &hasher{hash: conf.hashFunction}
	hashers[reflect.TypeOf(&csp.SHA256Opts{})] = &hasher{hash: sha256.New}
	hashers[reflect.TypeOf(&csp.SHA384Opts{})] = &hasher{hash: sha512.New384}
	hashers[reflect.TypeOf(&csp.SHA3_256Opts{})] = &hasher{hash: sha3.New256}
	hashers[reflect.TypeOf(&csp.SHA3_384Opts{})] = &hasher{hash: sha3.New384}

	swCSP := &impl{
		conf:      conf,
		ks:        keyStore,
		signers:   signers,
		verifiers: verifiers,
		hashers:   hashers}

	keyGenerators := make(map[reflect.Type]KeyGenerator)
	keyGenerators[reflect.TypeOf(&csp.ECDSAKeyGenOpts{})] = &ecdsaKeyGenerator{curve: conf.ellipticCurve}
	keyGenerators[reflect.TypeOf(&csp.ECDSAP256KeyGenOpts{})] = &ecdsaKeyGenerator{curve: elliptic.P256()}
	keyGenerators[reflect.TypeOf(&csp.ECDSAP384KeyGenOpts{})] = &ecdsaKeyGenerator{curve: elliptic.P384()}
	keyGenerators[reflect.TypeOf(&csp.ECDSAP256K1KeyGenOpts{})] = &secp256k1KeyGenerator{}
	swCSP.keyGenerators = keyGenerators

	keyDerivers := make(map[reflect.Type]KeyDeriver)
	keyDerivers[reflect.TypeOf(&ecdsaPrivateKey{})] = &ecdsaPrivateKeyKeyDeriver{}
	keyDerivers[reflect.TypeOf(&ecdsaPublicKey{})] = &ecdsaPublicKeyKeyDeriver{}
	swCSP.keyDerivers = keyDerivers

	keyImporters := make(map[reflect.Type]KeyImporter)
	keyImporters[reflect.TypeOf(&csp.ECDSAPKIXPublicKeyImportOpts{})] = &ecdsaPKIXPublicKeyImportOptsKeyImporter{}
	keyImporters[reflect.TypeOf(&csp.ECDSAPrivateKeyImportOpts{})] = &ecdsaPrivateKeyImportOptsKeyImporter{}
	keyImporters[reflect.TypeOf(&csp.ECDSAGoPublicKeyImportOpts{})] = &ecdsaGoPublicKeyImportOptsKeyImporter{}
	keyImporters[reflect.TypeOf(&csp.X509PublicKeyImportOpts{})] = &x509PublicKeyImportOptsKeyImporter{provider: swCSP}
	keyImporters[reflect.TypeOf(&csp.ECDSAPrivateKey256K1ImportOpts{})] = &secp256k1PrivateKeyImportOptsKeyImporter{}
	swCSP.keyImporters = keyImporters

	return swCSP, nil
}

type impl struct {
	conf *config
	ks   csp.KeyStore

	keyGenerators map[reflect.Type]KeyGenerator
	keyDerivers   map[reflect.Type]KeyDeriver
	keyImporters  map[reflect.Type]KeyImporter
	signers       map[reflect.Type]Signer
	verifiers     map[reflect.Type]Verifier
	hashers       map[reflect.Type]Hasher
}

func (swCSP *impl) KeyGen(opts csp.KeyGenOpts) (k csp.Key, err error) {
	if opts == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid Opts parameter. It must not be nil.")
	}

	keyGenerator, found := swCSP.keyGenerators[reflect.TypeOf(opts)]
	if !found {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.NotFound, "Unsupported 'KeyGenOpts' provided [%v]", opts)
	}

	k, err = keyGenerator.KeyGen(opts)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed generating key with opts [%v]", opts).WrapError(err)
	}

	if !opts.Ephemeral() {
		err = swCSP.ks.StoreKey(k)
		if err != nil {
			return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed storing key [%s]. [%s]", opts.Algorithm(), err)
		}
	}

	return k, nil
}

func (swCSP *impl) KeyDeriv(k csp.Key, opts csp.KeyDerivOpts) (dk csp.Key, err error) {
	if k == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid Key. It must not be nil.")
	}
	if opts == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid opts. It must not be nil.")
	}

	keyDeriver, found := swCSP.keyDerivers[reflect.TypeOf(k)]
	if !found {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.NotFound, "Unsupported 'Key' provided [%v]", k)
	}

	k, err = keyDeriver.KeyDeriv(k, opts)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed deriving key with opts [%v]", opts).WrapError(err)
	}

	if !opts.Ephemeral() {
		err = swCSP.ks.StoreKey(k)
		if err != nil {
			return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed storing key [%s]. [%s]", opts.Algorithm(), err)
		}
	}

	return k, nil
}

func (swCSP *impl) KeyImport(raw interface{}, opts csp.KeyImportOpts) (k csp.Key, err error) {
	if raw == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid raw. It must not be nil.")
	}
	if opts == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid opts. It must not be nil.")
	}

	keyImporter, found := swCSP.keyImporters[reflect.TypeOf(opts)]
	if !found {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.NotFound, "Unsupported 'KeyImportOpts' provided [%v]", opts)
	}

	k, err = keyImporter.KeyImport(raw, opts)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed importing key with opts [%v]", opts).WrapError(err)
	}

	if !opts.Ephemeral() {
		err = swCSP.ks.StoreKey(k)
		if err != nil {
			return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed storing imported key with opts [%v]", opts).WrapError(err)
		}
	}

	return
}

func (swCSP *impl) GetKey(ski []byte) (k csp.Key, err error) {
	k, err = swCSP.ks.GetKey(ski)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed getting key for SKI [%v]", ski).WrapError(err)
	}

	return
}

func (swCSP *impl) Hash(msg []byte, opts csp.HashOpts) (digest []byte, err error) {
	if opts == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid opts. It must not be nil.")
	}

	hasher, found := swCSP.hashers[reflect.TypeOf(opts)]
	if !found {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.NotFound, "Unsupported 'HashOpt' provided [%v]", opts)
	}

	digest, err = hasher.Hash(msg, opts)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed hashing with opts [%v]", opts).WrapError(err)
	}

	return
}

func (swCSP *impl) GetHash(opts csp.HashOpts) (h hash.Hash, err error) {
	if opts == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid opts. It must not be nil.")
	}

	hasher, found := swCSP.hashers[reflect.TypeOf(opts)]
	if !found {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.NotFound, "Unsupported 'HashOpt' provided [%v]", opts)
	}

	h, err = hasher.GetHash(opts)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed getting hash function with opts [%v]", opts).WrapError(err)
	}

	return
}

func (swCSP *impl) Sign(k csp.Key, digest []byte, opts csp.SignerOpts) (signature []byte, err error) {
	if k == nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid Key. It must not be nil.")
	}
	if len(digest) == 0 {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid digest. Cannot be empty.")
	}

	signer, found := swCSP.signers[reflect.TypeOf(k)]
	if !found {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.NotFound, "Unsupported 'SignKey' provided [%v]", k)
	}

	signature, err = signer.Sign(k, digest, opts)
	if err != nil {
		return nil, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed signing with opts [%v]", opts).WrapError(err)
	}

	return
}

func (swCSP *impl) Verify(k csp.Key, signature, digest []byte, opts csp.SignerOpts) (valid bool, err error) {
	if k == nil {
		return false, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid Key. It must not be nil.")
	}
	if len(signature) == 0 {
		return false, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid signature. Cannot be empty.")
	}
	if len(digest) == 0 {
		return false, errors.ErrorWithCallstack(errors.CSP, errors.BadRequest, "Invalid digest. Cannot be empty.")
	}

	verifier, found := swCSP.verifiers[reflect.TypeOf(k)]
	if !found {
		return false, errors.ErrorWithCallstack(errors.CSP, errors.NotFound, "Unsupported 'VerifyKey' provided [%v]", k)
	}

	valid, err = verifier.Verify(k, signature, digest, opts)
	if err != nil {
		return false, errors.ErrorWithCallstack(errors.CSP, errors.Internal, "Failed verifing with opts [%v]", opts).WrapError(err)
	}

	return
}
