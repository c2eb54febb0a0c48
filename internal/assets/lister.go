package assets

// Lister defines the contract for discovering asset files in a directory.
// Implementations may read the OS filesystem, an embedded filesystem, an
// in-memory fake, etc.
type Lister interface {
	// List returns the names of the immediate file entries of dir, a
	// slash-separated path relative to the lister's root.
	// Returns nil and a nil error if dir does not exist or is not a directory.
	List(dir string) ([]string, error)
}

// PageDir returns the slash-separated directory scanned for a page:
// baseDir/contextKey, or baseDir alone when contextKey is empty.
func PageDir(baseDir, contextKey string) string {
	if contextKey == "" {
		return baseDir
	}
	return baseDir + "/" + contextKey
}
