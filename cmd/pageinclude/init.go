package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pageinclude/internal/config"
	"github.com/alnah/go-pageinclude/internal/fileutil"
)

// runInit writes a starter config file with the default values.
func runInit(args []string, deps *Dependencies) error {
	f, positional, err := parseInitFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printInitUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgs, positional[0])
	}

	if fileutil.FileExists(f.output) && !f.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, f.output)
	}

	cfg := config.DefaultConfig()
	cfg.Includes.JS = []string{}
	cfg.Includes.CSS = []string{}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.output, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	fmt.Fprintf(deps.Stdout, "Created %s\n", f.output)
	return nil
}
