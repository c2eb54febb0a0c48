package pageinclude

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// scriptSuffixes are the final path segments that name a page script rather
// than a directory. A script path ending in one of them contributes its
// parent directories, not itself, to the domain trail.
var scriptSuffixes = []string{".php", ".html", ".htm", ".cgi"}

// Environment holds the serving-environment values a context is built from.
// All fields may be empty; missing values degrade the rendered URLs but never
// cause an error.
type Environment struct {
	// DocumentRoot is the absolute local directory the site is served from.
	DocumentRoot string

	// HTTPS is the secure-transport indicator. Any non-empty value marks the
	// request as secure.
	HTTPS string

	// Host is the request's host header, used verbatim (port included).
	Host string

	// ScriptPath is the URL path of the page script, e.g. "/shop/index.php".
	// It only determines the domain trail.
	ScriptPath string
}

// EnvironmentFromRequest builds an Environment from an incoming request.
// The request is secure when it arrived over TLS. ScriptPath is the request
// URL path; callers serving pages from a fixed mount point should overwrite it.
func EnvironmentFromRequest(r *http.Request, documentRoot string) Environment {
	env := Environment{
		DocumentRoot: documentRoot,
		Host:         r.Host,
	}
	if r.TLS != nil {
		env.HTTPS = "on"
	}
	if r.URL != nil {
		env.ScriptPath = r.URL.Path
	}
	return env
}

// Protocol returns "https" if the secure-transport indicator is set, else "http".
func (e Environment) Protocol() string {
	if e.HTTPS != "" {
		return "https"
	}
	return "http"
}

// DomainTrail returns the URL path prefix from the site root to the page
// script's directory: "" at the root, otherwise "seg/…/seg/" with a trailing
// slash and no leading slash.
func (e Environment) DomainTrail() string {
	return DomainTrail(e.ScriptPath)
}

// DomainTrail computes the domain trail for a script path. Empty, "." and ".."
// segments are dropped and a final segment with a script suffix is removed.
//
//	""                    -> ""
//	"/index.php"          -> ""
//	"/shop/index.php"     -> "shop/"
//	"/shop/catalog/"      -> "shop/catalog/"
func DomainTrail(scriptPath string) string {
	var segments []string
	for _, seg := range strings.Split(scriptPath, "/") {
		if seg != "" && seg != "." && seg != ".." {
			segments = append(segments, seg)
		}
	}
	if n := len(segments); n > 0 && isScriptName(segments[n-1]) {
		segments = segments[:n-1]
	}
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, "/") + "/"
}

// isScriptName reports whether name ends in a script suffix after at least
// one other character.
func isScriptName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range scriptSuffixes {
		if len(lower) > len(suffix) && strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// resolvedEnvironment is the immutable snapshot a Context computes once at
// construction.
type resolvedEnvironment struct {
	documentRoot string
	protocol     string
	host         string
	domainTrail  string
}

func resolveEnvironment(e Environment) resolvedEnvironment {
	return resolvedEnvironment{
		documentRoot: e.DocumentRoot,
		protocol:     e.Protocol(),
		host:         e.Host,
		domainTrail:  e.DomainTrail(),
	}
}

// httpRoot returns protocol://host/trail. It always ends in "/".
func (r resolvedEnvironment) httpRoot() string {
	return r.protocol + "://" + r.host + "/" + r.domainTrail
}

// siteRoot returns the local directory the domain trail maps to.
func (r resolvedEnvironment) siteRoot() string {
	if r.domainTrail == "" {
		return r.documentRoot
	}
	return filepath.Join(r.documentRoot, filepath.FromSlash(path.Clean(r.domainTrail)))
}

// fullFilesystemPath joins the document root, the domain trail and a
// root-relative path. The trail is kept when the document root is empty.
func (r resolvedEnvironment) fullFilesystemPath(relativePath string) string {
	return r.documentRoot + string(filepath.Separator) + filepath.FromSlash(r.domainTrail+relativePath)
}
