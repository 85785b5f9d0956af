// Package config loads carpet settings from the config file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds settings persisted to ~/.config/carpet/config.yaml.
type Config struct {
	ServerURL      string   `yaml:"server_url,omitempty" json:"server_url,omitempty"`
	Store          string   `yaml:"store,omitempty" json:"store"`
	StorePath      string   `yaml:"store_path,omitempty" json:"store_path"`
	Port           int      `yaml:"port,omitempty" json:"port"`
	DevMode        bool     `yaml:"dev_mode,omitempty" json:"dev_mode"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" json:"allowed_origins,omitempty"`
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "carpet", "config.yaml"), nil
}

// Read reads the config file.
// Returns a zero-value config if the file doesn't exist.
func Read() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Write writes the config file.
func Write(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Load reads the config file, applies CARPET_* environment overrides and
// fills in defaults.
func Load() (Config, error) {
	cfg, err := Read()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("CARPET_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("CARPET_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("CARPET_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("CARPET_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CARPET_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("CARPET_DEV_MODE"); v != "" {
		cfg.DevMode = v == "true"
	}
	if v := os.Getenv("CARPET_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the store selection.
func (c Config) Validate() error {
	switch c.Store {
	case StoreJSON, StoreSQLite:
		return nil
	}
	return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreJSON, StoreSQLite)
}

func (c *Config) applyDefaults() error {
	if c.Store == "" {
		c.Store = StoreJSON
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.StorePath == "" {
		path, err := DefaultStorePath(c.Store)
		if err != nil {
			return err
		}
		c.StorePath = path
	}
	return nil
}

// DefaultStorePath returns ~/.carpet/properties.json or ~/.carpet/properties.db.
func DefaultStorePath(store string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	name := "properties.json"
	if store == StoreSQLite {
		name = "properties.db"
	}
	return filepath.Join(home, ".carpet", name), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
