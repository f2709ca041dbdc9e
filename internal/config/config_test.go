package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("ARCHITECT_LISTEN", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != ":8080" || cfg.APIKey != "" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("ARCHITECT_LISTEN", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "listen: \":9090\"\napi_key: file-key\nimage_model: custom-imagen\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != ":9090" || cfg.APIKey != "file-key" || cfg.ImageModel != "custom-imagen" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: file-key\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GOOGLE_API_KEY", "env-key")
	t.Setenv("ARCHITECT_LISTEN", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("api key = %q, want env override", cfg.APIKey)
	}
	if cfg.Listen != ":7070" {
		t.Fatalf("listen = %q, want env override", cfg.Listen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load(absent) expected error")
	}
}
