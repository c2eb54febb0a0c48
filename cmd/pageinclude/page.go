package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pageinclude/internal/fileutil"
	"github.com/alnah/go-pageinclude/internal/pagedoc"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runPage renders a Markdown file as an HTML page whose head carries the
// include markup of the page's context key.
func runPage(ctx context.Context, args []string, deps *Dependencies) error {
	f, positional, err := parsePageFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printPageUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: page expects exactly one markdown file", ErrInvalidArgs)
	}

	input := positional[0]
	if !fileutil.HasExtension(input, ".md", ".markdown") {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(input))
	}

	content, err := os.ReadFile(input) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	// The key defaults to the file name, so about.md picks up js/about/.
	if f.key == "" {
		f.key = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	pc, err := buildContext(&f.renderFlags, deps)
	if err != nil {
		return err
	}

	title := f.title
	if title == "" {
		title = firstHeading(string(content))
	}

	out, err := pagedoc.NewBuilder().Build(ctx, pagedoc.Page{
		Title:    title,
		Markdown: string(content),
		Head:     pc.JS() + pc.CSS(),
	})
	if err != nil {
		return err
	}

	if f.output == "" {
		fmt.Fprint(deps.Stdout, out)
		return nil
	}
	return writeOutput(f.output, out)
}

// writeOutput writes content to path, creating parent directories.
func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// firstHeading returns the text of the first level-1 ATX heading, or "".
func firstHeading(markdown string) string {
	for line := range strings.Lines(markdown) {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
