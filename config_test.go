package dkimhound

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults()

	if c.Concurrency != 2048 {
		t.Errorf("concurrency = %d, want 2048", c.Concurrency)
	}
	if c.Retries != 3 {
		t.Errorf("retries = %d, want 3", c.Retries)
	}
	if c.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", c.Timeout)
	}
	if c.Logger == nil {
		t.Error("logger not defaulted")
	}
	if c.Resolver == nil {
		t.Error("resolver not defaulted")
	}
	if c.Reporter == nil {
		t.Error("reporter not defaulted")
	}
}

func TestConfigDefaultsKeepExplicit(t *testing.T) {
	c := Config{Concurrency: 16, Retries: 1, Timeout: time.Second}.withDefaults()

	if c.Concurrency != 16 || c.Retries != 1 || c.Timeout != time.Second {
		t.Errorf("explicit values overridden: %+v", c)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dkimhound.yaml")
	data := `
nameservers:
  - 9.9.9.9:53
concurrency: 128
retries: 5
timeout: 2s
quiet: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path, Config{})
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if len(c.Nameservers) != 1 || c.Nameservers[0] != "9.9.9.9:53" {
		t.Errorf("nameservers = %v", c.Nameservers)
	}
	if c.Concurrency != 128 {
		t.Errorf("concurrency = %d, want 128", c.Concurrency)
	}
	if c.Retries != 5 {
		t.Errorf("retries = %d, want 5", c.Retries)
	}
	if c.Timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", c.Timeout)
	}
	if !c.Quiet {
		t.Error("quiet not set")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), Config{}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("concurrency: [not a number"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path, Config{}); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
