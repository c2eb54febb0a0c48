package pageinclude

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alnah/go-pageinclude/internal/assets"
)

// Lister defines the contract for discovering page asset files.
// Implementations may read the OS filesystem, an embedded filesystem, a fake, etc.
//
// The library provides NewDirLister for the OS filesystem and NewFSLister for
// any fs.FS. Implement this interface for custom backends.
type Lister interface {
	// List returns the names of the immediate file entries of dir, a
	// slash-separated path relative to the site root such as "js/index".
	// Returns nil and a nil error when dir does not exist.
	List(dir string) ([]string, error)
}

// NewDirLister creates a Lister for directories below root on the OS filesystem.
// Entries are sorted by name, subdirectory names are listed but not descended
// into, and symlinks are followed as long as they stay below root.
//
// Returns ErrInvalidRoot if root is empty.
func NewDirLister(root string) (Lister, error) {
	l, err := assets.NewDirLister(root)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return l, nil
}

// NewFSLister creates a Lister over fsys, e.g. an embed.FS holding the site.
func NewFSLister(fsys fs.FS) Lister {
	return assets.NewFSLister(fsys)
}

// nopLister lists nothing. Used when no document root is known.
type nopLister struct{}

func (nopLister) List(string) ([]string, error) { return nil, nil }

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrInvalidContextKey):
		return fmt.Errorf("%w: %v", ErrInvalidContextKey, err)
	case errors.Is(err, assets.ErrInvalidBaseDir):
		return fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	case errors.Is(err, assets.ErrInvalidRoot):
		return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	default:
		return err
	}
}

// Compile-time interface checks.
var (
	_ Lister = (*assets.DirLister)(nil)
	_ Lister = (*assets.FSLister)(nil)
	_ Lister = nopLister{}
)
