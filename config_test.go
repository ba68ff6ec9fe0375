package stockfolio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_missing_file_yields_defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.FixedDir != filepath.Join(".stockfolio", "fixed") {
		t.Errorf("FixedDir = %q", cfg.Storage.FixedDir)
	}
	if cfg.Storage.CacheDir != filepath.Join(".stockfolio", "cache") {
		t.Errorf("CacheDir = %q", cfg.Storage.CacheDir)
	}
	if cfg.Provider.BaseURL != "https://www.alphavantage.co" {
		t.Errorf("BaseURL = %q", cfg.Provider.BaseURL)
	}
}

func TestLoadConfig_reads_yaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
storage:
  fixed_dir: /var/lib/sfc/fixed
  cache_dir: /var/cache/sfc
provider:
  base_url: https://provider.test
  api_key: demo
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.FixedDir != "/var/lib/sfc/fixed" {
		t.Errorf("FixedDir = %q", cfg.Storage.FixedDir)
	}
	if cfg.Provider.BaseURL != "https://provider.test" || cfg.Provider.APIKey != "demo" {
		t.Errorf("Provider = %+v", cfg.Provider)
	}
	// unset keys still default
	if cfg.Storage.FlexibleDir != filepath.Join(".stockfolio", "flexible") {
		t.Errorf("FlexibleDir = %q", cfg.Storage.FlexibleDir)
	}
}

func TestLoadConfig_env_overrides_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider:\n  api_key: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STOCKFOLIO_API_KEY", "from-env")
	t.Setenv("STOCKFOLIO_CACHE_DIR", "/tmp/quotes")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Provider.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want the environment value", cfg.Provider.APIKey)
	}
	if cfg.Storage.CacheDir != "/tmp/quotes" {
		t.Errorf("CacheDir = %q", cfg.Storage.CacheDir)
	}
}

func TestLoadConfig_rejects_malformed_yaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted malformed yaml")
	}
}
