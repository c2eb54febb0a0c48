// Package assets discovers page-specific asset files on disk.
//
// # Lister Architecture
//
//	Lister (interface)
//	    │
//	    ├── DirLister  - lists a directory below a root on the OS filesystem
//	    └── FSLister   - lists a directory inside any fs.FS (embed.FS, fstest.MapFS)
//
// A page directory is named by convention: a per-type base directory joined
// with the page's context key, for example js/index or css/blog/post.
//
//	{root}/
//	├── js/
//	│   ├── global1.js
//	│   └── index/
//	│       └── a.js          # discovered for context key "index"
//	└── css/
//	    └── index/
//	        └── a.css
//
// Listing is not recursive. Every entry is returned, subdirectories included,
// regardless of type, extension or leading dot.
//
// A directory that does not exist is the common case and is not an error:
// List returns an empty result and a nil error.
//
// # Security
//
// Context keys and base directories are validated so that a page directory
// never names a location outside the root. DirLister additionally resolves
// symlinks on the root and checks the listed directory stays inside it.
package assets
