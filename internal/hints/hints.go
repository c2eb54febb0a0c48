// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config under ~/.config/go-pageinclude/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml or run 'pageinclude init'"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-pageinclude") {
			hint += "; or create " + p
			break
		}
	}

	return format(hint)
}

// ForDocumentRoot returns a hint for a document root that is missing.
func ForDocumentRoot(root string) string {
	return format("check --root (" + root + ") points at the directory holding js/ and css/")
}

// ForContextKey returns a hint for an unusable context key.
func ForContextKey() string {
	return format("keys are page names like \"index\" or \"blog/post\"; no \"..\", leading \"/\" or backslashes")
}

// ForInclude returns a hint for an invalid include entry.
func ForInclude() string {
	return format("includes are root-relative paths (js/app.js) or URLs (https://…, //cdn/…)")
}

// ForListen returns a hint for a server that cannot bind its address.
func ForListen(addr string) string {
	return format("address " + addr + " may be in use; try --addr :0 or another port")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
