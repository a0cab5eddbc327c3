package config

import (
	"testing"
	"time"

	"github.com/matsen/paperdir/internal/crossref"
	"github.com/matsen/paperdir/internal/pdf"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve_Defaults(t *testing.T) {
	s, err := resolve(&GlobalConfig{}, "/papers", envMap(nil))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if s.Root != "/papers" {
		t.Errorf("Root = %q, want /papers", s.Root)
	}
	if s.IndexFile != DefaultIndexFile {
		t.Errorf("IndexFile = %q, want %q", s.IndexFile, DefaultIndexFile)
	}
	if s.ScanPages != pdf.DefaultScanPages {
		t.Errorf("ScanPages = %d", s.ScanPages)
	}
	if s.CrossrefURL != crossref.BaseURL {
		t.Errorf("CrossrefURL = %q", s.CrossrefURL)
	}
	if s.Timeout != crossref.DefaultTimeout {
		t.Errorf("Timeout = %v", s.Timeout)
	}
	if s.RateLimit != crossref.DefaultRateLimit {
		t.Errorf("RateLimit = %v", s.RateLimit)
	}
}

func TestResolve_GlobalThenEnv(t *testing.T) {
	global := &GlobalConfig{
		Mailto:      "file@example.org",
		CrossrefURL: "http://file",
		Timeout:     "10s",
		RateLimit:   1,
		IndexFile:   "INDEX.md",
		ScanPages:   2,
		LogLevel:    "warn",
		LogOutput:   "/var/log/paperdir.log",
	}

	s, err := resolve(global, "/cwd", envMap(nil))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if s.Mailto != "file@example.org" || s.CrossrefURL != "http://file" || s.Timeout != 10*time.Second {
		t.Errorf("global values not applied: %+v", s)
	}
	if s.IndexFile != "INDEX.md" || s.ScanPages != 2 || s.RateLimit != 1 || s.Log.Level != "warn" {
		t.Errorf("global values not applied: %+v", s)
	}
	if s.Log.Output != "/var/log/paperdir.log" {
		t.Errorf("Log.Output = %q", s.Log.Output)
	}

	s, err = resolve(global, "/cwd", envMap(map[string]string{
		EnvRoot:        "/env/root",
		EnvMailto:      "env@example.org",
		EnvCrossrefURL: "http://env",
		EnvTimeout:     "7",
		EnvLogLevel:    "debug",
	}))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if s.Root != "/env/root" {
		t.Errorf("Root = %q, want /env/root", s.Root)
	}
	if s.Mailto != "env@example.org" || s.CrossrefURL != "http://env" {
		t.Errorf("env overrides not applied: %+v", s)
	}
	if s.Timeout != 7*time.Second {
		t.Errorf("Timeout = %v, want 7s", s.Timeout)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", s.Log.Level)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		global *GlobalConfig
	}{
		{"bad timeout", &GlobalConfig{Timeout: "soon"}},
		{"zero timeout", &GlobalConfig{Timeout: "0"}},
		{"negative timeout", &GlobalConfig{Timeout: "-5s"}},
		{"index file with directory", &GlobalConfig{IndexFile: "docs/README.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolve(tt.global, "/cwd", envMap(nil)); err == nil {
				t.Error("resolve() error = nil, want error")
			}
		})
	}
}
