package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GlobalConfigPath()
	want := "/custom/config/paperdir/config.yml"
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	path = GlobalConfigPath()
	want = filepath.Join(home, ".config", "paperdir", "config.yml")
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadGlobalConfig_NotFound(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadGlobalConfig() returned nil")
	}
	if cfg.Mailto != "" || cfg.IndexFile != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadGlobalConfig_Valid(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `mailto: librarian@example.org
crossref_url: http://localhost:9999
timeout: 45s
rate_limit: 2.5
index_file: INDEX.md
scan_pages: 3
log_level: debug
log_format: json
log_output: stdout
`
	if err := os.WriteFile(filepath.Join(configDir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}

	if cfg.Mailto != "librarian@example.org" {
		t.Errorf("Mailto = %q", cfg.Mailto)
	}
	if cfg.CrossrefURL != "http://localhost:9999" {
		t.Errorf("CrossrefURL = %q", cfg.CrossrefURL)
	}
	if cfg.Timeout != "45s" {
		t.Errorf("Timeout = %q", cfg.Timeout)
	}
	if cfg.RateLimit != 2.5 {
		t.Errorf("RateLimit = %v", cfg.RateLimit)
	}
	if cfg.IndexFile != "INDEX.md" {
		t.Errorf("IndexFile = %q", cfg.IndexFile)
	}
	if cfg.ScanPages != 3 {
		t.Errorf("ScanPages = %d", cfg.ScanPages)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.LogOutput != "stdout" {
		t.Errorf("log settings = %q/%q/%q", cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
	}

	// Second call is served from the cache even if the file goes away.
	os.RemoveAll(configDir)
	cached, err := LoadGlobalConfig()
	if err != nil || cached != cfg {
		t.Errorf("LoadGlobalConfig() did not return cached config: %v", err)
	}
}

func TestLoadGlobalConfig_Malformed(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, GlobalConfigFile), []byte("mailto: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if _, err := LoadGlobalConfig(); err == nil {
		t.Error("LoadGlobalConfig() error = nil, want parse error")
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	if got := ExpandTilde("~/papers"); got != filepath.Join(home, "papers") {
		t.Errorf("ExpandTilde(~/papers) = %q", got)
	}
	if got := ExpandTilde("/abs/papers"); got != "/abs/papers" {
		t.Errorf("ExpandTilde(/abs/papers) = %q", got)
	}
	if got := ExpandTilde(""); got != "" {
		t.Errorf("ExpandTilde(\"\") = %q", got)
	}
}
