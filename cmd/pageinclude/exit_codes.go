package main

import (
	"errors"
	"os"

	pageinclude "github.com/alnah/go-pageinclude"
	"github.com/alnah/go-pageinclude/internal/config"
	"github.com/alnah/go-pageinclude/internal/fileutil"
)

// Exit codes for the pageinclude CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrConfigExists) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, pageinclude.ErrInvalidContextKey) ||
		errors.Is(err, pageinclude.ErrInvalidInclude) ||
		errors.Is(err, pageinclude.ErrInvalidBaseDir) ||
		errors.Is(err, pageinclude.ErrInvalidRoot) ||
		errors.Is(err, pageinclude.ErrUnknownAssetType) ||
		errors.Is(err, ErrEnvConfig) {
		return ExitUsage
	}

	return ExitGeneral
}
