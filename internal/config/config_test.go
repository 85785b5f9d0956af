package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndRead(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := Config{
		ServerURL: "http://myhost:9090",
		Store:     StoreSQLite,
		StorePath: "/data/props.db",
		Port:      9000,
	}

	if err := Write(cfg); err != nil {
		t.Fatalf("write: %v", err)
	}

	path := filepath.Join(tmp, ".config", "carpet", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("server_url = %q, want %q", loaded.ServerURL, cfg.ServerURL)
	}
	if loaded.Store != cfg.Store {
		t.Errorf("store = %q, want %q", loaded.Store, cfg.Store)
	}
	if loaded.Port != cfg.Port {
		t.Errorf("port = %d, want %d", loaded.Port, cfg.Port)
	}
}

func TestReadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Read()
	if err != nil {
		t.Fatalf("read missing: %v", err)
	}
	if cfg.ServerURL != "" || cfg.Store != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestReadInvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	path := filepath.Join(tmp, ".config", "carpet", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("port: [nope"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Read(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	for _, k := range []string{"CARPET_SERVER_URL", "CARPET_STORE", "CARPET_STORE_PATH", "CARPET_PORT", "CARPET_DEV_MODE", "CARPET_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != StoreJSON {
		t.Errorf("store = %q, want %q", cfg.Store, StoreJSON)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	want := filepath.Join(tmp, ".carpet", "properties.json")
	if cfg.StorePath != want {
		t.Errorf("store_path = %q, want %q", cfg.StorePath, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("CARPET_SERVER_URL", "http://custom:1234")
	t.Setenv("CARPET_STORE", StoreSQLite)
	t.Setenv("CARPET_STORE_PATH", "")
	t.Setenv("CARPET_PORT", "9999")
	t.Setenv("CARPET_DEV_MODE", "true")
	t.Setenv("CARPET_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://custom:1234" {
		t.Errorf("server_url = %q", cfg.ServerURL)
	}
	if cfg.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Port)
	}
	if !cfg.DevMode {
		t.Error("expected dev mode")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("allowed_origins = %v", cfg.AllowedOrigins)
	}
	if filepath.Base(cfg.StorePath) != "properties.db" {
		t.Errorf("store_path = %q, want sqlite default", cfg.StorePath)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CARPET_PORT", "eighty")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		store   string
		wantErr bool
	}{
		{StoreJSON, false},
		{StoreSQLite, false},
		{"postgres", true},
	}

	for _, tt := range tests {
		t.Run(tt.store, func(t *testing.T) {
			err := Config{Store: tt.store}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
