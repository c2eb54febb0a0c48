package pageinclude

import (
	"fmt"
	"strings"
)

// AssetType identifies a family of page assets. Each type maps to exactly one
// HTML tag template and one default base directory.
type AssetType int

// Asset types.
const (
	Script AssetType = iota
	Stylesheet
)

// assetTypes lists every AssetType in rendering order.
var assetTypes = []AssetType{Script, Stylesheet}

// String returns the short name of the type ("js" or "css"), which is also
// its default base directory.
func (t AssetType) String() string {
	switch t {
	case Script:
		return "js"
	case Stylesheet:
		return "css"
	default:
		return fmt.Sprintf("AssetType(%d)", int(t))
	}
}

// valid reports whether t is a known asset type.
func (t AssetType) valid() bool {
	return t == Script || t == Stylesheet
}

// ParseAssetType parses "js"/"script" or "css"/"stylesheet" (case-insensitive).
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToLower(s) {
	case "js", "script":
		return Script, nil
	case "css", "stylesheet":
		return Stylesheet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAssetType, s)
	}
}

// Includes holds the global asset references rendered on every page, one
// ordered list per asset type. Entries are root-relative paths such as
// "js/app.js" or, for page contexts, remote URLs such as
// "https://cdn.example.com/lib.js". A nil list is an empty list.
type Includes struct {
	JS  []string
	CSS []string
}

// For returns the list declared for t.
func (i Includes) For(t AssetType) []string {
	switch t {
	case Script:
		return i.JS
	case Stylesheet:
		return i.CSS
	default:
		return nil
	}
}

// Validate checks every entry is a usable reference.
// Empty, whitespace-only, and NUL-containing entries are configuration errors.
func (i Includes) Validate() error {
	for _, t := range assetTypes {
		for idx, ref := range i.For(t) {
			if strings.TrimSpace(ref) == "" {
				return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidInclude, t, idx)
			}
			if strings.ContainsRune(ref, 0) {
				return fmt.Errorf("%w: %s[%d] contains NUL byte", ErrInvalidInclude, t, idx)
			}
		}
	}
	return nil
}

// clone returns a deep copy so the caller cannot mutate a context's lists.
func (i Includes) clone() Includes {
	return Includes{
		JS:  append([]string(nil), i.JS...),
		CSS: append([]string(nil), i.CSS...),
	}
}
