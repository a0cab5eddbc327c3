package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/matsen/paperdir/internal/crossref"
	"github.com/matsen/paperdir/internal/logging"
	"github.com/matsen/paperdir/internal/pdf"
)

// Environment variables that override the global config file.
const (
	EnvRoot        = "PAPERDIR_ROOT"
	EnvMailto      = "PAPERDIR_MAILTO"
	EnvCrossrefURL = "PAPERDIR_CROSSREF_URL"
	EnvTimeout     = "PAPERDIR_TIMEOUT"
	EnvLogLevel    = "PAPERDIR_LOG_LEVEL"
)

// DefaultIndexFile is the per-directory index document name.
const DefaultIndexFile = "README.md"

// Settings is the fully resolved configuration for one organizing pass.
type Settings struct {
	Root        string
	IndexFile   string
	ScanPages   int
	Mailto      string
	CrossrefURL string
	Timeout     time.Duration
	RateLimit   float64
	Log         logging.Config
}

// Resolve merges the global config file, environment overrides and
// defaults. cwd is used as the root unless PAPERDIR_ROOT is set.
func Resolve(cwd string) (*Settings, error) {
	global, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}
	return resolve(global, cwd, os.Getenv)
}

func resolve(global *GlobalConfig, cwd string, getenv func(string) string) (*Settings, error) {
	s := &Settings{
		Root:        cwd,
		IndexFile:   DefaultIndexFile,
		ScanPages:   pdf.DefaultScanPages,
		Mailto:      global.Mailto,
		CrossrefURL: crossref.BaseURL,
		Timeout:     crossref.DefaultTimeout,
		RateLimit:   crossref.DefaultRateLimit,
		Log: logging.Config{
			Level:  global.LogLevel,
			Format: global.LogFormat,
			Output: ExpandTilde(global.LogOutput),
		},
	}

	if global.CrossrefURL != "" {
		s.CrossrefURL = global.CrossrefURL
	}
	if global.IndexFile != "" {
		s.IndexFile = global.IndexFile
	}
	if global.ScanPages > 0 {
		s.ScanPages = global.ScanPages
	}
	if global.RateLimit > 0 {
		s.RateLimit = global.RateLimit
	}
	timeout := global.Timeout

	if v := getenv(EnvRoot); v != "" {
		s.Root = v
	}
	if v := getenv(EnvMailto); v != "" {
		s.Mailto = v
	}
	if v := getenv(EnvCrossrefURL); v != "" {
		s.CrossrefURL = v
	}
	if v := getenv(EnvTimeout); v != "" {
		timeout = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		s.Log.Level = v
	}

	if timeout != "" {
		d, err := parseTimeout(timeout)
		if err != nil {
			return nil, err
		}
		s.Timeout = d
	}

	s.Root = ExpandTilde(s.Root)
	if strings.ContainsAny(s.IndexFile, `/\`) {
		return nil, fmt.Errorf("index_file must be a plain file name, got %q", s.IndexFile)
	}

	return s, nil
}

// parseTimeout accepts a Go duration or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("invalid timeout %q: must be positive", v)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", v)
	}
	return d, nil
}
