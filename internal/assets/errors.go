package assets

import "errors"

// Sentinel errors for asset discovery.
var (
	// ErrInvalidContextKey indicates the context key cannot name a page directory,
	// for example because it contains a ".." segment or a backslash.
	ErrInvalidContextKey = errors.New("invalid context key")

	// ErrInvalidBaseDir indicates the per-type base directory is empty,
	// absolute, or escapes the root.
	ErrInvalidBaseDir = errors.New("invalid base directory")

	// ErrInvalidRoot indicates the lister root is empty.
	ErrInvalidRoot = errors.New("invalid root")

	// ErrListDir indicates an I/O error occurred while reading a directory
	// that exists.
	ErrListDir = errors.New("failed to list directory")

	// ErrPathTraversal indicates an attempt to list a directory outside the root.
	ErrPathTraversal = errors.New("path traversal detected")
)
