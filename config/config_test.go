package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesmerise.yaml")
	body := "storage_path: /tmp/scores.eep\nsound: false\ndefault_alias: JOE\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoragePath != "/tmp/scores.eep" || cfg.Sound || cfg.DefaultAlias != "JOE" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestValidateRejectsBadAlias(t *testing.T) {
	cfg := Default()
	cfg.DefaultAlias = "TOOLONG"
	if err := cfg.Validate(); err == nil {
		t.Error("over-length alias should fail validation")
	}
	cfg.DefaultAlias = "A\x01B"
	if err := cfg.Validate(); err == nil {
		t.Error("non-printable alias should fail validation")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\t??"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}
