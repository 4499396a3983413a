// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/fplan/pkg/sysinfo"
)

// Config holds fplan configuration
type Config struct {
	ParentPackage  string                  `yaml:"parent_package"`
	Format         string                  `yaml:"format"`
	CachePath      string                  `yaml:"cache_path"`
	RegistryPath   string                  `yaml:"registry_path"`
	RegistryURL    string                  `yaml:"registry_url"`
	RegistryBranch string                  `yaml:"registry_branch"`
	LibraryDirs    []string                `yaml:"library_dirs"`
	BlasSrcDirs    []string                `yaml:"blas_src_dirs"`
	Disabled       []string                `yaml:"disabled"`
	Dependencies   map[string]sysinfo.Info `yaml:"dependencies"`
	Debug          bool                    `yaml:"debug"`
}

// Dependency registry defaults used by `fplan sync`
const (
	DefaultRegistryURL    = "https://github.com/arc-language/fplan-deps"
	DefaultRegistryBranch = "main"
)

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cache := getDefaultCachePath()
	return &Config{
		ParentPackage:  "",
		Format:         "yaml",
		CachePath:      cache,
		RegistryPath:   getDefaultRegistryPath(cache),
		RegistryURL:    getDefaultRegistryURL(),
		RegistryBranch: DefaultRegistryBranch,
		Debug:          false,
		Dependencies:   make(map[string]sysinfo.Info),
	}
}

// DefaultConfigPath returns $HOME/.config/fplan/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fplan", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the defaults.
// Values absent from the file keep their default.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Dependencies == nil {
		cfg.Dependencies = make(map[string]sysinfo.Info)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultCachePath() string {
	if path := os.Getenv("FPLAN_CACHE_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "fplan")
	}

	return filepath.Join(home, ".cache", "fplan")
}

func getDefaultRegistryPath(cache string) string {
	if path := os.Getenv("FPLAN_REGISTRY_PATH"); path != "" {
		return path
	}
	return filepath.Join(cache, "deps")
}

func getDefaultRegistryURL() string {
	if url := os.Getenv("FPLAN_REGISTRY_URL"); url != "" {
		return url
	}
	return DefaultRegistryURL
}
