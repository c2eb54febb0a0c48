package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirLister lists asset directories on the OS filesystem below a root.
// Implements Lister interface.
type DirLister struct {
	root string
}

// NewDirLister creates a DirLister for the given root.
// The root does not need to exist: a missing root lists as empty, which keeps
// page rendering working on a half-deployed site.
// Returns ErrInvalidRoot if root is empty.
func NewDirLister(root string) (*DirLister, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	// Resolve symlinks in the root for consistent containment checks
	if realRoot, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = realRoot
	}

	return &DirLister{root: absRoot}, nil
}

// Root returns the absolute, symlink-resolved root.
func (d *DirLister) Root() string {
	return d.root
}

// List returns the names of every immediate entry of {root}/{dir},
// subdirectories included, sorted by name. It does not descend into them.
func (d *DirLister) List(dir string) ([]string, error) {
	dirPath := filepath.Join(d.root, filepath.FromSlash(dir))

	if err := d.verifyPathContainment(dirPath); err != nil {
		return nil, err
	}

	// os.Stat follows symlinks, so a symlinked page directory is listed
	info, err := os.Stat(dirPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrListDir, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// verifyPathContainment ensures the directory resolves inside the root.
// Symlinks inside the page directory path are resolved before the check.
func (d *DirLister) verifyPathContainment(dirPath string) error {
	resolved := dirPath
	if realPath, err := filepath.EvalSymlinks(dirPath); err == nil {
		resolved = realPath
	}
	// A missing directory keeps its lexical path; the listing will be empty anyway

	if resolved != d.root && !strings.HasPrefix(resolved, d.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes root", ErrPathTraversal, dirPath)
	}
	return nil
}

// Compile-time interface check.
var _ Lister = (*DirLister)(nil)
