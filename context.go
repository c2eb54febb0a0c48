package pageinclude

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-pageinclude/internal/assets"
)

// Context renders the asset inclusion markup of one page.
//
// A Context combines the global includes declared for every page with the
// files discovered in the page's own directories (js/<key>, css/<key>).
// Create one per request with NewContext or NewPageContext, call JS and CSS,
// then discard it. A Context is not safe for concurrent use.
type Context struct {
	key       string
	includes  Includes
	baseDirs  map[AssetType]string
	env       resolvedEnvironment
	caps      Capability
	cacheBust bool
	lister    Lister
	now       func() time.Time
	logger    *slog.Logger
}

// NewContext creates a base Context: every global include is treated as a
// root-relative local path.
//
// key names the page directories; an empty key renders global includes plus
// any files directly in the base directories. includes and env are copied and
// never change afterwards.
//
// Returns ErrInvalidContextKey, ErrInvalidInclude, ErrInvalidBaseDir or
// ErrUnknownAssetType for unusable configuration.
func NewContext(key string, includes Includes, env Environment, opts ...Option) (*Context, error) {
	c := &Context{
		key:      key,
		includes: includes.clone(),
		baseDirs: map[AssetType]string{
			Script:     Script.String(),
			Stylesheet: Stylesheet.String(),
		},
		env:    resolveEnvironment(env),
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	if c.lister == nil {
		c.lister = c.defaultLister()
	}

	return c, nil
}

// NewPageContext creates a Context with PageCapabilities: remote global
// includes are emitted verbatim and SetCacheBust is honored.
// Options may still narrow the capability set with WithCapabilities.
func NewPageContext(key string, includes Includes, env Environment, opts ...Option) (*Context, error) {
	return NewContext(key, includes, env, append([]Option{WithCapabilities(PageCapabilities)}, opts...)...)
}

func (c *Context) validate() error {
	if err := assets.ValidateContextKey(c.key); err != nil {
		return convertAssetError(err)
	}
	if err := c.includes.Validate(); err != nil {
		return err
	}
	for t, dir := range c.baseDirs {
		if !t.valid() {
			return fmt.Errorf("%w: base directory for %v", ErrUnknownAssetType, t)
		}
		if err := assets.ValidateBaseDir(dir); err != nil {
			return convertAssetError(err)
		}
	}
	return nil
}

// defaultLister returns a filesystem lister rooted at the site root, or a
// lister that finds nothing when no document root is known.
func (c *Context) defaultLister() Lister {
	if c.env.documentRoot == "" {
		return nopLister{}
	}
	root := c.env.siteRoot()
	l, err := assets.NewDirLister(root)
	if err != nil {
		c.logger.Warn("asset discovery disabled", "root", root, "error", err)
		return nopLister{}
	}
	return l
}

// JS returns the <script> tags for the page: global includes first, then
// discovered page scripts.
func (c *Context) JS() string {
	out, _ := c.Render(Script)
	return out
}

// CSS returns the <link> tags for the page: global includes first, then
// discovered page stylesheets.
func (c *Context) CSS() string {
	out, _ := c.Render(Stylesheet)
	return out
}

// Render returns the markup for t. Each call rescans the page directory.
//
// The global pass emits one tag per declared include, in order. The discovery
// pass emits one tag per file in the page directory whose path
// ("<dir>/<name>") is not itself a declared include of the same type.
// Only an unknown asset type is an error; discovery failures render as an
// empty directory.
func (c *Context) Render(t AssetType) (string, error) {
	if !t.valid() {
		return "", fmt.Errorf("%w: %v", ErrUnknownAssetType, t)
	}

	token := ""
	if c.cacheBustEnabled() {
		token = cacheBustToken(c.now())
	}

	var b strings.Builder

	globals := c.includes.For(t)
	declared := make(map[string]struct{}, len(globals))
	for _, ref := range globals {
		declared[ref] = struct{}{}
		b.WriteString(RenderTag(t, c.globalURL(ref, token)))
	}

	dir := c.PageDir(t)
	discovered, skipped := 0, 0
	for _, name := range c.discover(dir) {
		rel := dir + "/" + name
		if _, dup := declared[rel]; dup {
			skipped++
			continue
		}
		b.WriteString(RenderTag(t, c.localURL(rel, token)))
		discovered++
	}

	c.logger.Debug("rendered asset tags",
		"key", c.key,
		"type", t.String(),
		"global", len(globals),
		"discovered", discovered,
		"duplicates", skipped,
	)

	return b.String(), nil
}

// discover lists dir, logging and swallowing errors.
func (c *Context) discover(dir string) []string {
	names, err := c.lister.List(dir)
	if err != nil {
		c.logger.Warn("asset discovery failed", "dir", dir, "error", err)
		return nil
	}
	return names
}

// globalURL resolves a declared include.
func (c *Context) globalURL(ref, token string) string {
	if c.IsRemote(ref) {
		return ref
	}
	return c.localURL(ref, token)
}

// localURL returns HTTPRoot()+ref, with "?token" appended when token is set.
func (c *Context) localURL(ref, token string) string {
	u := c.env.httpRoot() + ref
	if token != "" {
		u += "?" + token
	}
	return u
}

// IsRemote reports whether the context emits ref verbatim as a remote URL.
// Always false without CapRemoteURLs.
func (c *Context) IsRemote(ref string) bool {
	return c.caps.Has(CapRemoteURLs) && IsRemote(ref)
}

// ResolveLocalURL returns HTTPRoot()+ref, followed by "?<unix seconds>"
// when cache-busting is enabled.
func (c *Context) ResolveLocalURL(ref string) string {
	token := ""
	if c.cacheBustEnabled() {
		token = cacheBustToken(c.now())
	}
	return c.localURL(ref, token)
}

func (c *Context) cacheBustEnabled() bool {
	return c.cacheBust && c.caps.Has(CapCacheBust)
}

// SetCacheBust toggles cache-busting for subsequent renders. It has no effect
// on markup already returned, nor on contexts without CapCacheBust.
func (c *Context) SetCacheBust(enabled bool) {
	c.cacheBust = enabled
}

// CacheBust reports whether cache-busting applies to rendered local URLs.
func (c *Context) CacheBust() bool {
	return c.cacheBustEnabled()
}

// HTTPRoot returns the absolute URL prefix of the site,
// protocol://host/<domain trail>. It always ends in "/".
func (c *Context) HTTPRoot() string {
	return c.env.httpRoot()
}

// Protocol returns "https" or "http".
func (c *Context) Protocol() string {
	return c.env.protocol
}

// FullFilesystemPath returns the absolute local path of a root-relative asset
// path: document root, domain trail, then relativePath.
func (c *Context) FullFilesystemPath(relativePath string) string {
	return c.env.fullFilesystemPath(relativePath)
}

// PageDir returns the directory scanned for t, relative to the site root:
// "<base>/<key>", or "<base>" when the key is empty.
func (c *Context) PageDir(t AssetType) string {
	return assets.PageDir(c.baseDirs[t], c.key)
}

// ContextKey returns the page identifier the context was created with.
func (c *Context) ContextKey() string {
	return c.key
}

// Capabilities returns the context's capability set.
func (c *Context) Capabilities() Capability {
	return c.caps
}
