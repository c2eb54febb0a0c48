package pageinclude

import "errors"

// Sentinel errors for library operations.
var (
	// Construction errors.
	ErrInvalidContextKey = errors.New("invalid context key")
	ErrInvalidInclude    = errors.New("invalid global include")
	ErrInvalidBaseDir    = errors.New("invalid asset base directory")
	ErrInvalidRoot       = errors.New("invalid document root")

	// Render errors.
	ErrUnknownAssetType = errors.New("unknown asset type")
)
