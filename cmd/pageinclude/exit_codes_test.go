package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pageinclude "github.com/alnah/go-pageinclude"
	"github.com/alnah/go-pageinclude/internal/config"
	"github.com/alnah/go-pageinclude/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"not a directory", fileutil.ErrNotDirectory, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"config exists", ErrConfigExists, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"invalid args", ErrInvalidArgs, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"invalid context key", pageinclude.ErrInvalidContextKey, ExitUsage},
		{"invalid include", pageinclude.ErrInvalidInclude, ExitUsage},
		{"invalid base dir", pageinclude.ErrInvalidBaseDir, ExitUsage},
		{"unknown asset type", pageinclude.ErrUnknownAssetType, ExitUsage},
		{"env config", ErrEnvConfig, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1 and 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
