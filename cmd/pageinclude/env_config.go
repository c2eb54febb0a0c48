package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-pageinclude/internal/config"
)

// ErrEnvConfig indicates a PAGEINCLUDE_* variable could not be parsed.
var ErrEnvConfig = errors.New("invalid environment variable")

// envPrefix is shared by every recognized variable.
const envPrefix = "PAGEINCLUDE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Pointer fields stay nil when the variable is unset.
type envConfig struct {
	ConfigPath   string `env:"CONFIG"`        // config file name or path
	DocumentRoot string `env:"DOCUMENT_ROOT"` // site.documentRoot
	ScriptPath   string `env:"SCRIPT_PATH"`   // site.scriptPath
	Host         string `env:"HOST"`          // site.host
	HTTPS        *bool  `env:"HTTPS"`         // site.https
	CacheBust    *bool  `env:"CACHE_BUST"`    // assets.cacheBust
	Addr         string `env:"ADDR"`          // server.addr
}

// knownEnvVars lists valid PAGEINCLUDE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PAGEINCLUDE_CONFIG":        true,
	"PAGEINCLUDE_DOCUMENT_ROOT": true,
	"PAGEINCLUDE_SCRIPT_PATH":   true,
	"PAGEINCLUDE_HOST":          true,
	"PAGEINCLUDE_HTTPS":         true,
	"PAGEINCLUDE_CACHE_BUST":    true,
	"PAGEINCLUDE_ADDR":          true,
}

// environMap converts os.Environ-style entries to a map.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		m[name] = value
	}
	return m
}

// loadEnvConfig reads PAGEINCLUDE_* variables from environ.
func loadEnvConfig(environ []string) (*envConfig, error) {
	cfg := &envConfig{}
	opts := env.Options{
		Prefix:      envPrefix,
		Environment: environMap(environ),
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvConfig, err)
	}
	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized PAGEINCLUDE_* variables.
// Helps catch typos like PAGEINCLUDE_DOCROOT instead of PAGEINCLUDE_DOCUMENT_ROOT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with every variable that is set.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.DocumentRoot != "" {
		cfg.Site.DocumentRoot = e.DocumentRoot
	}
	if e.ScriptPath != "" {
		cfg.Site.ScriptPath = e.ScriptPath
	}
	if e.Host != "" {
		cfg.Site.Host = e.Host
	}
	if e.HTTPS != nil {
		cfg.Site.HTTPS = *e.HTTPS
	}
	if e.CacheBust != nil {
		cfg.Assets.CacheBust = *e.CacheBust
	}
	if e.Addr != "" {
		cfg.Server.Addr = e.Addr
	}
}
