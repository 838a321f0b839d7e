package csp

const (
	// ECDSA is the default family, curve chosen by security level.
	ECDSA = "ECDSA"

	ECDSAP256 = "ECDSAP256"
	ECDSAP384 = "ECDSAP384"

	// ECDSAP256K1 is the secp256k1 curve used by ledger identities.
	ECDSAP256K1 = "ECDSAP256K1"

	ECDSAReRand = "ECDSA_RERAND"

	SHA      = "SHA"
	SHA256   = "SHA256"
	SHA384   = "SHA384"
	SHA3_256 = "SHA3_256"
	SHA3_384 = "SHA3_384"

	X509Certificate = "X509Certificate"
)

type ECDSAKeyGenOpts struct {
	Temporary bool
}

func (opts *ECDSAKeyGenOpts) Algorithm() string {
	return ECDSA
}

func (opts *ECDSAKeyGenOpts) Ephemeral() bool {
	return opts.Temporary
}

type ECDSAPKIXPublicKeyImportOpts struct {
	Temporary bool
}

func (opts *ECDSAPKIXPublicKeyImportOpts) Algorithm() string {
	return ECDSA
}

func (opts *ECDSAPKIXPublicKeyImportOpts) Ephemeral() bool {
	return opts.Temporary
}

type ECDSAPrivateKeyImportOpts struct {
	Temporary bool
}

func (opts *ECDSAPrivateKeyImportOpts) Algorithm() string {
	return ECDSA
}

func (opts *ECDSAPrivateKeyImportOpts) Ephemeral() bool {
	return opts.Temporary
}

type ECDSAGoPublicKeyImportOpts struct {
	Temporary bool
}

func (opts *ECDSAGoPublicKeyImportOpts) Algorithm() string {
	return ECDSA
}

func (opts *ECDSAGoPublicKeyImportOpts) Ephemeral() bool {
	return opts.Temporary
}

type ECDSAPrivateKey256K1ImportOpts struct {
	Temporary bool
}

func (opts *ECDSAPrivateKey256K1ImportOpts) Algorithm() string {
	return ECDSAP256K1
}

func (opts *ECDSAPrivateKey256K1ImportOpts) Ephemeral() bool {
	return opts.Temporary
}

type ECDSAReRandKeyOpts struct {
	Temporary bool

	Expansion []byte
}

func (opts *ECDSAReRandKeyOpts) Algorithm() string {
	return ECDSAReRand
}

func (opts *ECDSAReRandKeyOpts) Ephemeral() bool {
	return opts.Temporary
}

// ExpansionValue returns the re-randomization factor.
func (opts *ECDSAReRandKeyOpts) ExpansionValue() []byte {
	return opts.Expansion
}

type X509PublicKeyImportOpts struct {
	Temporary bool
}

func (opts *X509PublicKeyImportOpts) Algorithm() string {
	return X509Certificate
}

func (opts *X509PublicKeyImportOpts) Ephemeral() bool {
	return opts.Temporary
}
