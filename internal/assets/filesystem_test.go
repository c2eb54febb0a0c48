package assets

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// writeFiles creates the given files (slash paths) below dir.
func writeFiles(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", f, err)
		}
		if err := os.WriteFile(p, []byte("/* "+f+" */"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
}

func TestNewDirLister(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		lister, err := NewDirLister(t.TempDir())
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}
		if lister == nil {
			t.Fatal("NewDirLister() returned nil")
		}
		if !filepath.IsAbs(lister.Root()) {
			t.Errorf("Root() = %q, want absolute path", lister.Root())
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewDirLister("")
		if !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("NewDirLister(\"\") error = %v, want ErrInvalidRoot", err)
		}
	})

	t.Run("nonexistent root is accepted", func(t *testing.T) {
		t.Parallel()

		lister, err := NewDirLister("/nonexistent/path/abc123xyz")
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}
		names, err := lister.List("js/index")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(names) != 0 {
			t.Errorf("List() = %v, want empty", names)
		}
	})
}

func TestDirLister_List(t *testing.T) {
	t.Parallel()

	t.Run("lists immediate files sorted by name", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, "js/index/b.js", "js/index/a.js", "js/index/.hidden", "js/index/readme.txt")

		lister, err := NewDirLister(root)
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		got, err := lister.List("js/index")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		want := []string{".hidden", "a.js", "b.js", "readme.txt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
	})

	t.Run("lists subdirectories without recursing", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, "js/blog/a.js", "js/blog/post/deep.js")

		lister, err := NewDirLister(root)
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		got, err := lister.List("js/blog")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !reflect.DeepEqual(got, []string{"a.js", "post"}) {
			t.Errorf("List() = %v, want [a.js post]", got)
		}
	})

	t.Run("missing directory is empty without error", func(t *testing.T) {
		t.Parallel()

		lister, err := NewDirLister(t.TempDir())
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		got, err := lister.List("css/missing")
		if err != nil {
			t.Errorf("List() error = %v, want nil", err)
		}
		if got != nil {
			t.Errorf("List() = %v, want nil", got)
		}
	})

	t.Run("regular file instead of directory is empty", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, "js/index")

		lister, err := NewDirLister(root)
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		got, err := lister.List("js/index")
		if err != nil || got != nil {
			t.Errorf("List() = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "js", "index"), 0o755); err != nil {
			t.Fatal(err)
		}

		lister, err := NewDirLister(root)
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		got, err := lister.List("js/index")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("List() = %v, want empty", got)
		}
	})

	t.Run("lexical traversal is rejected", func(t *testing.T) {
		t.Parallel()

		lister, err := NewDirLister(t.TempDir())
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		_, err = lister.List("../outside")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("List() error = %v, want ErrPathTraversal", err)
		}
	})
}

func TestDirLister_Symlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}

	t.Run("symlinked page directory inside root is followed", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, "shared/a.js")
		if err := os.MkdirAll(filepath.Join(root, "js"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.Symlink(filepath.Join(root, "shared"), filepath.Join(root, "js", "index")); err != nil {
			t.Fatalf("failed to create symlink: %v", err)
		}

		lister, err := NewDirLister(root)
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		got, err := lister.List("js/index")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !reflect.DeepEqual(got, []string{"a.js"}) {
			t.Errorf("List() = %v, want [a.js]", got)
		}
	})

	t.Run("symlink escaping root is rejected", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outside := t.TempDir()
		writeFiles(t, outside, "secret.js")
		if err := os.MkdirAll(filepath.Join(root, "js"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.Symlink(outside, filepath.Join(root, "js", "index")); err != nil {
			t.Fatalf("failed to create symlink: %v", err)
		}

		lister, err := NewDirLister(root)
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		_, err = lister.List("js/index")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("List() error = %v, want ErrPathTraversal", err)
		}
	})

	t.Run("symlinked subdirectory entry is listed", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, "js/index/a.js", "other/b.js")
		if err := os.Symlink(filepath.Join(root, "other"), filepath.Join(root, "js", "index", "linked")); err != nil {
			t.Fatalf("failed to create symlink: %v", err)
		}

		lister, err := NewDirLister(root)
		if err != nil {
			t.Fatalf("NewDirLister() error = %v", err)
		}

		got, err := lister.List("js/index")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !reflect.DeepEqual(got, []string{"a.js", "linked"}) {
			t.Errorf("List() = %v, want [a.js linked]", got)
		}
	})
}
