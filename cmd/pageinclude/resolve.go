package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	pageinclude "github.com/alnah/go-pageinclude"
	"github.com/alnah/go-pageinclude/internal/config"
	"github.com/alnah/go-pageinclude/internal/fileutil"
	"github.com/alnah/go-pageinclude/internal/hints"
)

// loadConfig builds the effective config: defaults, then the config file
// (--config or PAGEINCLUDE_CONFIG), then PAGEINCLUDE_* overrides.
// CLI flags are merged afterwards by each command.
func loadConfig(common *commonFlags, deps *Dependencies) (*config.Config, error) {
	environ := deps.Environ()
	warnUnknownEnvVars(deps.Stderr, environ)

	envCfg, err := loadEnvConfig(environ)
	if err != nil {
		return nil, err
	}

	path := common.config
	if path == "" {
		path = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if path != "" {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w%s", err, configHint(err))
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

func configHint(err error) string {
	var nf *config.NotFoundError
	if errors.As(err, &nf) {
		return hints.ForConfigNotFound(nf.Tried)
	}
	return ""
}

// mergeIncludeFlags appends repeatable include flags to the config lists
// and applies the cache-bust flag when set explicitly.
func mergeIncludeFlags(f *includeFlags, changed func(string) bool, cfg *config.Config) {
	cfg.Includes.JS = append(cfg.Includes.JS, f.js...)
	cfg.Includes.CSS = append(cfg.Includes.CSS, f.css...)
	if changed("cache-bust") {
		cfg.Assets.CacheBust = f.cacheBust
	}
}

// mergeSiteFlags applies serving-environment flags (CLI wins).
func mergeSiteFlags(f *siteFlags, changed func(string) bool, cfg *config.Config) {
	if f.root != "" {
		cfg.Site.DocumentRoot = f.root
	}
	if f.host != "" {
		cfg.Site.Host = f.host
	}
	if changed("https") {
		cfg.Site.HTTPS = f.https
	}
	if f.scriptPath != "" {
		cfg.Site.ScriptPath = f.scriptPath
	}
}

// documentRoot resolves the configured document root to an absolute directory.
func documentRoot(cfg *config.Config) (string, error) {
	root, err := fileutil.AbsDir(cfg.Site.DocumentRoot)
	if err != nil {
		return "", fmt.Errorf("document root: %w%s", err, hints.ForDocumentRoot(cfg.Site.DocumentRoot))
	}
	return root, nil
}

// includesFrom converts the config include lists.
func includesFrom(cfg *config.Config) pageinclude.Includes {
	return pageinclude.Includes{JS: cfg.Includes.JS, CSS: cfg.Includes.CSS}
}

// contextOptions returns the options shared by every context built from cfg.
// The base variant drops both page capabilities.
func contextOptions(cfg *config.Config, base bool, deps *Dependencies, logger *slog.Logger) []pageinclude.Option {
	caps := pageinclude.PageCapabilities
	if !cfg.Assets.RemoteEnabled() {
		caps &^= pageinclude.CapRemoteURLs
	}
	if base {
		caps = 0
	}

	return []pageinclude.Option{
		pageinclude.WithCapabilities(caps),
		pageinclude.WithBaseDir(pageinclude.Script, cfg.Assets.JSDir),
		pageinclude.WithBaseDir(pageinclude.Stylesheet, cfg.Assets.CSSDir),
		pageinclude.WithCacheBust(cfg.Assets.CacheBust),
		pageinclude.WithClock(deps.Now),
		pageinclude.WithLogger(logger),
	}
}

// newLogger returns a text logger on w at a level chosen by the common flags.
func newLogger(w io.Writer, f *commonFlags) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// contextError decorates construction errors with a hint.
func contextError(err error) error {
	switch {
	case errors.Is(err, pageinclude.ErrInvalidContextKey):
		return fmt.Errorf("%w%s", err, hints.ForContextKey())
	case errors.Is(err, pageinclude.ErrInvalidInclude):
		return fmt.Errorf("%w%s", err, hints.ForInclude())
	}
	return err
}
