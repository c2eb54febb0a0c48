package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pageinclude/internal/fileutil"
	"github.com/alnah/go-pageinclude/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// appDirName is the directory under the user config dir searched for named configs.
const appDirName = "go-pageinclude"

// Field length limits.
const (
	MaxPathLength     = 4096 // Filesystem paths
	MaxHostLength     = 255  // DNS name plus port
	MaxIncludeLength  = 2048 // Browser URL limit
	MaxIncludeEntries = 256  // Per asset type
	MaxDirLength      = 255  // Base directory names
	MaxKeyLength      = 255  // Context key
	MaxAddrLength     = 255  // Listen address
)

// Config holds all configuration for rendering include markup.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Includes IncludesConfig `yaml:"includes"`
	Assets   AssetsConfig   `yaml:"assets"`
	Server   ServerConfig   `yaml:"server"`
}

// SiteConfig describes the serving environment for offline rendering.
// When serving HTTP, Host and HTTPS come from each request instead.
type SiteConfig struct {
	DocumentRoot string `yaml:"documentRoot"` // Local directory the site is served from
	ScriptPath   string `yaml:"scriptPath"`   // Page script URL path, sets the domain trail (default: "/")
	Host         string `yaml:"host"`         // Host header value, used verbatim
	HTTPS        bool   `yaml:"https"`        // Render https:// URLs
}

// IncludesConfig lists the global includes, rendered on every page.
type IncludesConfig struct {
	JS  []string `yaml:"js"`
	CSS []string `yaml:"css"`
}

// AssetsConfig defines discovery and URL options.
type AssetsConfig struct {
	JSDir     string `yaml:"jsDir"`     // Base directory for scripts (default: "js")
	CSSDir    string `yaml:"cssDir"`    // Base directory for stylesheets (default: "css")
	CacheBust bool   `yaml:"cacheBust"` // Append ?<unix seconds> to local URLs
	Remote    *bool  `yaml:"remote,omitempty"` // Emit remote includes verbatim (default: true)
}

// RemoteEnabled reports whether remote-URL classification is on.
func (a AssetsConfig) RemoteEnabled() bool {
	return a.Remote == nil || *a.Remote
}

// ServerConfig defines the demo server options.
type ServerConfig struct {
	Addr string `yaml:"addr"` // Listen address (default: ":8080")
	Page string `yaml:"page"` // Context key for "/" (default: "index")
}

// Validate checks field lengths and include entries.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.documentRoot", c.Site.DocumentRoot, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.scriptPath", c.Site.ScriptPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.host", c.Site.Host, MaxHostLength); err != nil {
		return err
	}

	if err := validateIncludes("includes.js", c.Includes.JS); err != nil {
		return err
	}
	if err := validateIncludes("includes.css", c.Includes.CSS); err != nil {
		return err
	}

	if err := validateFieldLength("assets.jsDir", c.Assets.JSDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.cssDir", c.Assets.CSSDir, MaxDirLength); err != nil {
		return err
	}

	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if err := validateFieldLength("server.page", c.Server.Page, MaxKeyLength); err != nil {
		return err
	}

	return nil
}

// validateIncludes rejects oversized lists and unusable entries.
func validateIncludes(field string, entries []string) error {
	if len(entries) > MaxIncludeEntries {
		return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, field, len(entries), MaxIncludeEntries)
	}
	for i, entry := range entries {
		name := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("%w: %s: empty include", ErrInvalidField, name)
		}
		if err := validateFieldLength(name, entry, MaxIncludeLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with no includes, serving from the
// current directory.
func DefaultConfig() *Config {
	return &Config{
		Site:     SiteConfig{DocumentRoot: ".", ScriptPath: "/", Host: "localhost:8080"},
		Includes: IncludesConfig{},
		Assets:   AssetsConfig{JSDir: "js", CSSDir: "css"},
		Server:   ServerConfig{Addr: ":8080", Page: "index"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML, e.g. to write a starter file.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pageinclude/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

// NotFoundError reports the locations searched for a named config.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Unwrap returns ErrConfigNotFound for errors.Is matching.
func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}
