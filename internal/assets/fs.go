package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// FSLister lists asset directories inside an fs.FS.
// Useful with embed.FS for self-contained binaries and with fstest.MapFS in tests.
// Implements Lister interface.
type FSLister struct {
	fsys fs.FS
}

// NewFSLister creates an FSLister over fsys.
func NewFSLister(fsys fs.FS) *FSLister {
	return &FSLister{fsys: fsys}
}

// List returns the names of every immediate entry of dir in the
// filesystem, subdirectories included, sorted by name.
func (f *FSLister) List(dir string) ([]string, error) {
	name := path.Clean(dir)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrPathTraversal, dir)
	}

	entries, err := fs.ReadDir(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		// Reading a regular file as a directory is a "not a directory" case
		if info, statErr := fs.Stat(f.fsys, name); statErr == nil && !info.IsDir() {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrListDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Compile-time interface check.
var _ Lister = (*FSLister)(nil)
