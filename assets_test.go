package pageinclude

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/alnah/go-pageinclude/internal/assets"
)

func TestNewDirLister_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewDirLister("")
	if !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("NewDirLister(\"\") error = %v, want ErrInvalidRoot", err)
	}
}

func TestNewFSLister(t *testing.T) {
	t.Parallel()

	l := NewFSLister(fstest.MapFS{
		"js/index/b.js":   {},
		"js/index/a.js":   {},
		"js/index/x/y.js": {},
	})

	got, err := l.List("js/index")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 || got[0] != "a.js" || got[1] != "b.js" || got[2] != "x" {
		t.Errorf("List() = %v, want [a.js b.js x]", got)
	}
}

func TestConvertAssetError(t *testing.T) {
	t.Parallel()

	other := errors.New("other")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"context key", assets.ErrInvalidContextKey, ErrInvalidContextKey},
		{"base dir", assets.ErrInvalidBaseDir, ErrInvalidBaseDir},
		{"root", assets.ErrInvalidRoot, ErrInvalidRoot},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := convertAssetError(tt.in); !errors.Is(got, tt.want) {
				t.Errorf("convertAssetError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if convertAssetError(nil) != nil {
		t.Error("convertAssetError(nil) should be nil")
	}
}
