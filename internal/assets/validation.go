package assets

import (
	"fmt"
	"strings"
)

// ValidateContextKey checks that a context key can safely name a page directory.
// An empty key is valid and means "no page directory". Keys may contain "/" to
// address nested page directories, but not empty, "." or ".." segments,
// backslashes, or NUL bytes.
func ValidateContextKey(key string) error {
	if key == "" {
		return nil
	}
	if err := validateRelative(key); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidContextKey, key, err)
	}
	return nil
}

// ValidateBaseDir checks that a base directory is a non-empty relative path
// that stays below the root.
func ValidateBaseDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: empty", ErrInvalidBaseDir)
	}
	if err := validateRelative(dir); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidBaseDir, dir, err)
	}
	return nil
}

func validateRelative(p string) error {
	if strings.ContainsAny(p, "\\\x00") {
		return fmt.Errorf("contains backslash or NUL")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("absolute path")
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return fmt.Errorf("empty segment")
		case ".", "..":
			return fmt.Errorf("%q segment", seg)
		}
	}
	return nil
}
