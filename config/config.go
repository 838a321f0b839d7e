package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/Snapper-Future-Tech/Fabric-sdk/util"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type LogConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
}

// CSPConfig selects the software provider settings and the backing
// keystore location.
type CSPConfig struct {
	SecurityLevel int    `json:"securityLevel"`
	HashFamily    string `json:"hashFamily"`
	KeyStorePath  string `json:"keyStorePath"`
	KeyCacheSize  int    `json:"keyCacheSize,omitempty"`
}

type AllConfig struct {
	Log         LogConfig `json:"logConfig"`
	RestPort    uint16    `json:"restPort"`
	KeyPairPath string    `json:"keyPairPath"`
	CSPConfig   `json:"cspConfig"`
}

var Config = NewConfig()

func NewConfig() *AllConfig {
	c := &AllConfig{}
	c.Log.Path = "./logs"
	c.Log.Level = "info"
	c.RestPort = 7711
	c.KeyPairPath = "./keypair.json"
	c.SecurityLevel = 256
	c.HashFamily = "SHA2"
	c.KeyStorePath = "./keystore"
	return c
}

func LoadConfig(path string) {
	if path == "" {
		return
	}

	if util.PathExists(path) == false {
		fmt.Println("config path is missing")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic("config load fail: " + err.Error())
	}

	err = json.Unmarshal(data, Config)
	if err != nil {
		panic("config load fail: " + err.Error())
	}
}
