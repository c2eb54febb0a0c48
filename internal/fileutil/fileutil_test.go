package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileAndDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(file, []byte("site: {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if !DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
	if FileExists(filepath.Join(dir, "missing")) || DirExists(filepath.Join(dir, "missing")) {
		t.Error("missing path reported as existing")
	}
}

func TestAbsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := AbsDir(dir)
	if err != nil {
		t.Fatalf("AbsDir() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("AbsDir() = %q, want absolute", got)
	}

	if _, err := AbsDir(filepath.Join(dir, "missing")); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("AbsDir(missing) error = %v, want ErrNotDirectory", err)
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"site", false},
		{"my-site", false},
		{"./site.yaml", true},
		{"/etc/site.yaml", true},
		{`C:\site.yaml`, true},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	if !HasExtension("doc.MD", ".md", ".markdown") {
		t.Error("HasExtension(doc.MD) = false, want true")
	}
	if HasExtension("doc.txt", ".md") {
		t.Error("HasExtension(doc.txt) = true, want false")
	}
}
