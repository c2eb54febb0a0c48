package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs      = errors.New("invalid arguments")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrConfigExists     = errors.New("config file already exists")
)
