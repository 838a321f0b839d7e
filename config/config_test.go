package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := NewConfig()
	if c.Log.Level != "info" {
		t.Errorf("unexpected default log level %s", c.Log.Level)
	}
	if c.SecurityLevel != 256 || c.HashFamily != "SHA2" {
		t.Errorf("unexpected default csp settings %d/%s", c.SecurityLevel, c.HashFamily)
	}
	if c.RestPort == 0 {
		t.Error("rest port not defaulted")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peer.json")
	raw := `{
		"logConfig": {"path": "/tmp/logs", "level": "debug"},
		"restPort": 9000,
		"keyPairPath": "/tmp/node.key",
		"cspConfig": {"securityLevel": 384, "hashFamily": "SHA3", "keyStorePath": "/tmp/ks", "keyCacheSize": 16}
	}`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	Config = NewConfig()
	LoadConfig(path)

	if Config.Log.Level != "debug" {
		t.Errorf("log level not loaded, got %s", Config.Log.Level)
	}
	if Config.RestPort != 9000 {
		t.Errorf("rest port not loaded, got %d", Config.RestPort)
	}
	if Config.SecurityLevel != 384 || Config.HashFamily != "SHA3" {
		t.Errorf("csp settings not loaded, got %d/%s", Config.SecurityLevel, Config.HashFamily)
	}
	if Config.KeyCacheSize != 16 {
		t.Errorf("key cache size not loaded, got %d", Config.KeyCacheSize)
	}
}

func TestLoadConfigMissingPath(t *testing.T) {
	Config = NewConfig()
	LoadConfig("")
	LoadConfig("/nonexistent/peer.json")

	if Config.SecurityLevel != 256 {
		t.Error("defaults clobbered by missing config")
	}
}
