// Package config handles global configuration for paperdir.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/paperdir/config.yml.
// Every field is optional; Resolve fills in defaults.
type GlobalConfig struct {
	Mailto      string  `yaml:"mailto,omitempty"`       // Contact for the Crossref polite pool
	CrossrefURL string  `yaml:"crossref_url,omitempty"` // Override of the Crossref API base URL
	Timeout     string  `yaml:"timeout,omitempty"`      // Per-lookup timeout, Go duration syntax
	RateLimit   float64 `yaml:"rate_limit,omitempty"`   // Lookups per second
	IndexFile   string  `yaml:"index_file,omitempty"`   // Name of the per-directory index document
	ScanPages   int     `yaml:"scan_pages,omitempty"`   // Leading PDF pages searched for a DOI
	LogLevel    string  `yaml:"log_level,omitempty"`
	LogFormat   string  `yaml:"log_format,omitempty"`
	LogOutput   string  `yaml:"log_output,omitempty"` // "stderr", "stdout" or a file path
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "paperdir"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/paperdir/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
