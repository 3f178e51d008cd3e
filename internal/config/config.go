package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `accounts init`.
const FileName = "accounts.yaml"

// Config represents the top-level accounts.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
}

// StorageConfig locates the durable key-value store.
type StorageConfig struct {
	Dir string `yaml:"dir"` // directory holding the store's slots
	Key string `yaml:"key"` // slot name the ledger lives under
}

// DisplayConfig holds presentation preferences shared by consumers.
type DisplayConfig struct {
	Currency string `yaml:"currency"` // label only, no conversion
}

// ServerConfig controls the local HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a Config with sensible defaults rooted at dataDir.
func Default(dataDir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Dir: dataDir,
			Key: "accounts",
		},
		Display: DisplayConfig{
			Currency: "BDT",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Load reads an accounts.yaml file and applies environment overrides.
// A .env file in the working directory is honored when present.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnv(&cfg)
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	if v := os.Getenv("ACCOUNTS_DATA_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("ACCOUNTS_STORAGE_KEY"); v != "" {
		cfg.Storage.Key = v
	}
	if v := os.Getenv("ACCOUNTS_CURRENCY"); v != "" {
		cfg.Display.Currency = v
	}
	if v := os.Getenv("ACCOUNTS_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
}
