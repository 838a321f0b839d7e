package identity

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/juju/errors"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/factory"
	"github.com/Snapper-Future-Tech/Fabric-sdk/logging"
)

const (
	LOGTABLE_IDENTITY string = "identity"
)

// Supported signing schemes. The scheme selects the curve and the hash
// used by Sign/Verify.
const (
	ECDSAP256 = iota
	ECDSAP384
	SECP256K1
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var identityLog logging.LogModule
var keyPair *KeyPair

type KeyPair struct {
	Scheme int
	PubKey csp.Key
	PriKey csp.Key
}

// savedKeyPair is the on-disk form. Material holds the PEM-encoded
// private key for P-curves and the raw 32-byte scalar for secp256k1.
type savedKeyPair struct {
	Scheme   int    `json:"scheme"`
	Material []byte `json:"material"`
}

func GetLocalPrivKey() csp.Key {
	if keyPair == nil {
		return nil
	}
	return keyPair.PriKey
}

func GetLocalPubKey() csp.Key {
	if keyPair == nil {
		return nil
	}
	return keyPair.PubKey
}

func NewKeyPair() *KeyPair {
	identityLog = logging.GetLogIns()
	kp := &KeyPair{}
	keyPair = kp
	return kp
}

// Generate creates a fresh key pair under the given scheme using the
// default provider. The key is ephemeral until Save is called.
func (kp *KeyPair) Generate(scheme int) error {
	provider := factory.GetDefault()

	var genOpts csp.KeyGenOpts
	switch scheme {
	case ECDSAP256:
		genOpts = &csp.ECDSAP256KeyGenOpts{Temporary: true}
	case ECDSAP384:
		genOpts = &csp.ECDSAP384KeyGenOpts{Temporary: true}
	case SECP256K1:
		genOpts = &csp.ECDSAP256K1KeyGenOpts{Temporary: true}
	default:
		return errors.Errorf("scheme not support : %v", scheme)
	}

	priKey, err := provider.KeyGen(genOpts)
	if err != nil {
		return errors.Annotate(err, "generate key pair")
	}

	pubKey, err := priKey.PublicKey()
	if err != nil {
		return errors.Annotate(err, "derive public key")
	}

	kp.Scheme = scheme
	kp.PriKey = priKey
	kp.PubKey = pubKey
	return nil
}

// Init loads the key pair persisted at path and rebuilds both halves
// through the default provider.
func (kp *KeyPair) Init(path string) error {
	saved, err := load(path)
	if err != nil {
		return err
	}

	provider := factory.GetDefault()

	var importOpts csp.KeyImportOpts
	switch saved.Scheme {
	case ECDSAP256, ECDSAP384:
		importOpts = &csp.ECDSAPrivateKeyImportOpts{Temporary: true}
	case SECP256K1:
		importOpts = &csp.ECDSAPrivateKey256K1ImportOpts{Temporary: true}
	default:
		return errors.Errorf("scheme not support : %v", saved.Scheme)
	}

	priKey, err := provider.KeyImport(saved.Material, importOpts)
	if err != nil {
		return errors.Annotate(err, "import private key")
	}

	pubKey, err := priKey.PublicKey()
	if err != nil {
		return errors.Annotate(err, "derive public key")
	}

	kp.Scheme = saved.Scheme
	kp.PriKey = priKey
	kp.PubKey = pubKey
	return nil
}

// Save persists the private half at path. The public half is always
// rederivable so only the private material is written.
func (kp *KeyPair) Save(path string) error {
	if kp.PriKey == nil {
		return errors.New("key pair not initialized")
	}

	material, err := kp.PriKey.Bytes()
	if err != nil {
		return errors.Annotate(err, "serialize private key")
	}

	data, err := json.Marshal(&savedKeyPair{Scheme: kp.Scheme, Material: material})
	if err != nil {
		return errors.Annotate(err, "marshal key pair")
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		return errors.Annotate(err, "write key pair")
	}

	identityLog.Infof(LOGTABLE_IDENTITY, "key pair saved at [%s]", path)
	return nil
}

func load(path string) (*savedKeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "read key pair")
	}
	saved := new(savedKeyPair)
	err = json.Unmarshal(data, saved)
	if err != nil {
		return nil, errors.Annotate(err, "unmarshal key pair")
	}
	return saved, nil
}
