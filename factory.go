package pageinclude

import (
	"net/http"
	"strings"
)

// Factory builds one page Context per HTTP request from shared settings.
// A Factory is safe for concurrent use; the contexts it returns are not and
// must not outlive the request.
type Factory struct {
	documentRoot string
	scriptPath   string
	includes     Includes
	opts         []Option
}

// NewFactory creates a Factory. scriptPath, when non-empty, replaces the
// request path as the source of the domain trail; use it when pages are
// served from a fixed mount point such as "/" or "/shop/".
//
// The includes are validated once here so per-request construction cannot
// fail on them.
func NewFactory(documentRoot, scriptPath string, includes Includes, opts ...Option) (*Factory, error) {
	if err := includes.Validate(); err != nil {
		return nil, err
	}
	return &Factory{
		documentRoot: documentRoot,
		scriptPath:   scriptPath,
		includes:     includes.clone(),
		opts:         opts,
	}, nil
}

// ForRequest returns a page Context for r and the given context key.
func (f *Factory) ForRequest(r *http.Request, key string) (*Context, error) {
	env := EnvironmentFromRequest(r, f.documentRoot)
	if f.scriptPath != "" {
		env.ScriptPath = f.scriptPath
	}
	return NewPageContext(key, f.includes, env, f.opts...)
}

// ContextKeyFromPath derives a context key from a URL path relative to the
// page mount point. The empty path maps to index; a trailing script suffix
// such as ".html" is dropped.
//
//	"/"            -> index
//	"/about"       -> "about"
//	"/blog/post/"  -> "blog/post"
//	"/faq.html"    -> "faq"
func ContextKeyFromPath(urlPath, index string) string {
	key := strings.Trim(urlPath, "/")
	if key == "" {
		return index
	}
	last := key[strings.LastIndex(key, "/")+1:]
	if isScriptName(last) {
		key = key[:len(key)-len(last)+strings.LastIndex(last, ".")]
	}
	return key
}
