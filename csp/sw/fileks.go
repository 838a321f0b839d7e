package sw

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Snapper-Future-Tech/Fabric-sdk/csp"
	"github.com/Snapper-Future-Tech/Fabric-sdk/csp/utils"
)

// Suffixes used for keystore entries. P-curve keys are stored as PEM,
// secp256k1 keys as raw scalar/compressed point since PKCS#8 does not
// cover that curve.
const (
	suffixPrivateKey  = "sk"
	suffixPublicKey   = "pk"
	suffixSecpPrivate = "k1"
	suffixSecpPublic  = "k1p"
)

func NewFileBasedKeyStore(pwd []byte, path string, readOnly bool) (csp.KeyStore, error) {
	ks := &fileBasedKeyStore{}
	return ks, ks.Init(pwd, path, readOnly)
}

type fileBasedKeyStore struct {
	path string

	readOnly bool
	isOpen   bool

	pwd []byte

	m sync.Mutex
}

func (ks *fileBasedKeyStore) Init(pwd []byte, path string, readOnly bool) error {
	if len(path) == 0 {
		return errors.New("An invalid KeyStore path provided. Path cannot be an empty string.")
	}

	ks.m.Lock()
	defer ks.m.Unlock()

	if ks.isOpen {
		return errors.New("KeyStore already initilized.")
	}

	ks.path = path
	ks.pwd = utils.Clone(pwd)

	err := ks.createKeyStoreIfNotExists()
	if err != nil {
		return err
	}

	err = ks.openKeyStore()
	if err != nil {
		return err
	}

	ks.readOnly = readOnly

	return nil
}

func (ks *fileBasedKeyStore) ReadOnly() bool {
	return ks.readOnly
}

func (ks *fileBasedKeyStore) GetKey(ski []byte) (k csp.Key, err error) {
	if len(ski) == 0 {
		return nil, errors.New("Invalid SKI. Cannot be of zero length.")
	}

	alias := hex.EncodeToString(ski)
	suffix := ks.getSuffix(alias)

	switch suffix {
	case suffixPrivateKey:
		key, err := ks.loadPrivateKey(alias)
		if err != nil {
			return nil, fmt.Errorf("Failed loading secret key [%x] [%s]", ski, err)
		}

		switch kk := key.(type) {
		case *ecdsa.PrivateKey:
			return NewECDSAPrivateKey(kk)
		default:
			return nil, errors.New("Secret key type not recognized")
		}
	case suffixPublicKey:
		key, err := ks.loadPublicKey(alias)
		if err != nil {
			return nil, fmt.Errorf("Failed loading public key [%x] [%s]", ski, err)
		}

		switch kk := key.(type) {
		case *ecdsa.PublicKey:
			return NewECDSAPublicKey(kk)
		default:
			return nil, errors.New("Public key type not recognized")
		}
	case suffixSecpPrivate:
		key, err := ks.loadSecpPrivateKey(alias)
		if err != nil {
			return nil, fmt.Errorf("Failed loading secret key [%x] [%s]", ski, err)
		}

		return NewSecp256k1PrivateKey(key)
	case suffixSecpPublic:
		key, err := ks.loadSecpPublicKey(alias)
		if err != nil {
			return nil, fmt.Errorf("Failed loading public key [%x] [%s]", ski, err)
		}

		return NewSecp256k1PublicKey(key)
	default:
		return ks.searchKeystoreForSKI(ski)
	}
}

func (ks *fileBasedKeyStore) StoreKey(k csp.Key) (err error) {
	if ks.readOnly {
		return errors.New("Read only KeyStore.")
	}

	if k == nil {
		return errors.New("Invalid key. It must be different from nil.")
	}

	alias := hex.EncodeToString(k.SKI())

	switch kk := k.(type) {
	case *ecdsaPrivateKey:
		err = ks.storePrivateKey(alias, kk.privKey)
		if err != nil {
			return fmt.Errorf("Failed storing ECDSA private key [%s]", err)
		}

	case *ecdsaPublicKey:
		err = ks.storePublicKey(alias, kk.pubKey)
		if err != nil {
			return fmt.Errorf("Failed storing ECDSA public key [%s]", err)
		}

	case *secp256k1PrivateKey:
		err = ks.storeRaw(alias, suffixSecpPrivate, kk.privKey.Serialize())
		if err != nil {
			return fmt.Errorf("Failed storing secp256k1 private key [%s]", err)
		}

	case *secp256k1PublicKey:
		err = ks.storeRaw(alias, suffixSecpPublic, kk.pubKey.SerializeCompressed())
		if err != nil {
			return fmt.Errorf("Failed storing secp256k1 public key [%s]", err)
		}

	default:
		return fmt.Errorf("Key type not reconigned [%s]", k)
	}

	return
}

func (ks *fileBasedKeyStore) searchKeystoreForSKI(ski []byte) (k csp.Key, err error) {
	files, _ := os.ReadDir(ks.path)
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(ks.path, f.Name()))
		if err != nil {
			continue
		}

		key, err := utils.PEMtoPrivateKey(raw, ks.pwd)
		if err != nil {
			continue
		}

		kk, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			continue
		}

		k, err = NewECDSAPrivateKey(kk)
		if err != nil {
			continue
		}

		if !bytes.Equal(k.SKI(), ski) {
			continue
		}

		return k, nil
	}
	return nil, errors.New("Key type not recognized")
}

func (ks *fileBasedKeyStore) getSuffix(alias string) string {
	files, _ := os.ReadDir(ks.path)
	for _, f := range files {
		if strings.HasPrefix(f.Name(), alias) {
			if strings.HasSuffix(f.Name(), suffixSecpPublic) {
				return suffixSecpPublic
			}
			if strings.HasSuffix(f.Name(), suffixSecpPrivate) {
				return suffixSecpPrivate
			}
			if strings.HasSuffix(f.Name(), suffixPrivateKey) {
				return suffixPrivateKey
			}
			if strings.HasSuffix(f.Name(), suffixPublicKey) {
				return suffixPublicKey
			}
			break
		}
	}
	return ""
}

func (ks *fileBasedKeyStore) storePrivateKey(alias string, privateKey interface{}) error {
	rawKey, err := utils.PrivateKeyToPEM(privateKey, ks.pwd)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed converting private key to PEM [%s]: [%s]", alias, err)
		return err
	}

	err = os.WriteFile(ks.getPathForAlias(alias, suffixPrivateKey), rawKey, 0700)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed storing private key [%s]: [%s]", alias, err)
		return err
	}

	return nil
}

func (ks *fileBasedKeyStore) storePublicKey(alias string, publicKey interface{}) error {
	rawKey, err := utils.PublicKeyToPEM(publicKey, ks.pwd)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed converting public key to PEM [%s]: [%s]", alias, err)
		return err
	}

	err = os.WriteFile(ks.getPathForAlias(alias, suffixPublicKey), rawKey, 0700)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed storing public key [%s]: [%s]", alias, err)
		return err
	}

	return nil
}

func (ks *fileBasedKeyStore) storeRaw(alias, suffix string, material []byte) error {
	err := os.WriteFile(ks.getPathForAlias(alias, suffix), material, 0700)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed storing key [%s]: [%s]", alias, err)
		return err
	}

	return nil
}

func (ks *fileBasedKeyStore) loadPrivateKey(alias string) (interface{}, error) {
	path := ks.getPathForAlias(alias, suffixPrivateKey)
	logger.Debugf(LOGTABLE_CSP, "Loading private key [%s] at [%s]...", alias, path)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed loading private key [%s]: [%s].", alias, err.Error())

		return nil, err
	}

	privateKey, err := utils.PEMtoPrivateKey(raw, ks.pwd)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed parsing private key [%s]: [%s].", alias, err.Error())

		return nil, err
	}

	return privateKey, nil
}

func (ks *fileBasedKeyStore) loadPublicKey(alias string) (interface{}, error) {
	path := ks.getPathForAlias(alias, suffixPublicKey)
	logger.Debugf(LOGTABLE_CSP, "Loading public key [%s] at [%s]...", alias, path)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed loading public key [%s]: [%s].", alias, err.Error())

		return nil, err
	}

	publicKey, err := utils.PEMtoPublicKey(raw, ks.pwd)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed parsing public key [%s]: [%s].", alias, err.Error())

		return nil, err
	}

	return publicKey, nil
}

func (ks *fileBasedKeyStore) loadSecpPrivateKey(alias string) (*btcec.PrivateKey, error) {
	path := ks.getPathForAlias(alias, suffixSecpPrivate)
	logger.Debugf(LOGTABLE_CSP, "Loading private key [%s] at [%s]...", alias, path)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed loading private key [%s]: [%s].", alias, err.Error())

		return nil, err
	}

	if len(raw) != 32 {
		return nil, fmt.Errorf("invalid scalar length [%d]", len(raw))
	}

	privKey, _ := btcec.PrivKeyFromBytes(raw)
	return privKey, nil
}

func (ks *fileBasedKeyStore) loadSecpPublicKey(alias string) (*btcec.PublicKey, error) {
	path := ks.getPathForAlias(alias, suffixSecpPublic)
	logger.Debugf(LOGTABLE_CSP, "Loading public key [%s] at [%s]...", alias, path)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf(LOGTABLE_CSP, "Failed loading public key [%s]: [%s].", alias, err.Error())

		return nil, err
	}

	return btcec.ParsePubKey(raw)
}

func (ks *fileBasedKeyStore) createKeyStoreIfNotExists() error {
	ksPath := ks.path
	missing, _ := utils.DirMissingOrEmpty(ksPath)

	if missing {
		err := ks.createKeyStore()
		if err != nil {
			logger.Errorf(LOGTABLE_CSP, "Failed creating KeyStore At [%s]: [%s]", ksPath, err.Error())
			return err
		}
	}

	return nil
}

func (ks *fileBasedKeyStore) createKeyStore() error {
	ksPath := ks.path
	logger.Debugf(LOGTABLE_CSP, "Creating KeyStore at [%s]...", ksPath)

	return os.MkdirAll(ksPath, 0755)
}

func (ks *fileBasedKeyStore) openKeyStore() error {
	if ks.isOpen {
		return nil
	}
	ks.isOpen = true

	logger.Debugf(LOGTABLE_CSP, "KeyStore opened at [%s]...done", ks.path)

	return nil
}

func (ks *fileBasedKeyStore) getPathForAlias(alias, suffix string) string {
	return filepath.Join(ks.path, alias+"_"+suffix)
}
