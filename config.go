package stockfolio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the storage roots and the provider credential. All keys
// are read-only to the engine; the CLI loads them once at startup.
type Config struct {
	Storage struct {
		FixedDir    string `yaml:"fixed_dir"`
		FlexibleDir string `yaml:"flexible_dir"`
		StrategyDir string `yaml:"strategy_dir"`
		CacheDir    string `yaml:"cache_dir"`
	} `yaml:"storage"`
	Provider struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"provider"`
}

// LoadConfig reads config from a YAML file, then applies .env and
// environment variable overrides. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional; variables already exported win over it.
	_ = godotenv.Load()

	if v := os.Getenv("STOCKFOLIO_FIXED_DIR"); v != "" {
		cfg.Storage.FixedDir = v
	}
	if v := os.Getenv("STOCKFOLIO_FLEXIBLE_DIR"); v != "" {
		cfg.Storage.FlexibleDir = v
	}
	if v := os.Getenv("STOCKFOLIO_STRATEGY_DIR"); v != "" {
		cfg.Storage.StrategyDir = v
	}
	if v := os.Getenv("STOCKFOLIO_CACHE_DIR"); v != "" {
		cfg.Storage.CacheDir = v
	}
	if v := os.Getenv("STOCKFOLIO_PROVIDER_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("STOCKFOLIO_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	root := ".stockfolio"
	if c.Storage.FixedDir == "" {
		c.Storage.FixedDir = filepath.Join(root, "fixed")
	}
	if c.Storage.FlexibleDir == "" {
		c.Storage.FlexibleDir = filepath.Join(root, "flexible")
	}
	if c.Storage.StrategyDir == "" {
		c.Storage.StrategyDir = filepath.Join(root, "strategies")
	}
	if c.Storage.CacheDir == "" {
		c.Storage.CacheDir = filepath.Join(root, "cache")
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://www.alphavantage.co"
	}
}
