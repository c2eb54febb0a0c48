package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedNow is the clock used by every CLI test.
var fixedNow = time.Unix(1700000000, 0)

// testDeps returns dependencies writing to buffers with the given environment.
func testDeps(environ ...string) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Dependencies{
		Now:     func() time.Time { return fixedNow },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: func() []string { return environ },
	}, &stdout, &stderr
}

// writeSite creates files (slash-separated relative paths) under a temp root.
func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}
