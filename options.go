package pageinclude

import (
	"log/slog"
	"time"
)

// Capability is a feature a Context may support beyond plain local
// resolution. Capabilities combine as bit flags.
type Capability uint8

const (
	// CapRemoteURLs emits global includes that look like remote URLs verbatim
	// instead of resolving them below the HTTP root.
	CapRemoteURLs Capability = 1 << iota

	// CapCacheBust allows SetCacheBust to append a time token to local URLs.
	CapCacheBust
)

// PageCapabilities is the capability set of NewPageContext.
const PageCapabilities = CapRemoteURLs | CapCacheBust

// Has reports whether c includes every flag in other.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Option configures a Context.
type Option func(*Context)

// WithCapabilities replaces the context's capability set.
func WithCapabilities(caps Capability) Option {
	return func(c *Context) {
		c.caps = caps
	}
}

// WithLister sets the discovery backend. Paths passed to the lister are
// relative to the site root, e.g. "js/index".
// Defaults to a filesystem lister rooted at the document root plus domain trail.
func WithLister(l Lister) Option {
	return func(c *Context) {
		c.lister = l
	}
}

// WithBaseDir overrides the base directory for t (default: "js", "css").
// Nested directories such as "static/js" are allowed.
func WithBaseDir(t AssetType, dir string) Option {
	return func(c *Context) {
		c.baseDirs[t] = dir
	}
}

// WithClock sets the time source for cache-busting tokens.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("pageinclude: WithClock requires a non-nil function")
	}
	return func(c *Context) {
		c.now = now
	}
}

// WithCacheBust sets the initial cache-busting flag. Equivalent to calling
// SetCacheBust right after construction.
func WithCacheBust(enabled bool) Option {
	return func(c *Context) {
		c.cacheBust = enabled
	}
}

// WithLogger sets the logger for discovery failures and render summaries.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}
