package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	pageinclude "github.com/alnah/go-pageinclude"
)

// runRender prints the script tags then the stylesheet tags for one page.
func runRender(args []string, deps *Dependencies) error {
	f, positional, err := parseRenderFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printRenderUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgs, positional[0])
	}

	pc, err := buildContext(f, deps)
	if err != nil {
		return err
	}

	fmt.Fprint(deps.Stdout, pc.JS())
	fmt.Fprint(deps.Stdout, pc.CSS())
	return nil
}

// buildContext resolves config, env and flags into a single page context.
func buildContext(f *renderFlags, deps *Dependencies) (*pageinclude.Context, error) {
	cfg, err := loadConfig(&f.common, deps)
	if err != nil {
		return nil, err
	}

	mergeSiteFlags(&f.site, f.fs.Changed, cfg)
	mergeIncludeFlags(&f.includes, f.fs.Changed, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := documentRoot(cfg)
	if err != nil {
		return nil, err
	}

	env := pageinclude.Environment{
		DocumentRoot: root,
		Host:         cfg.Site.Host,
		ScriptPath:   cfg.Site.ScriptPath,
	}
	if cfg.Site.HTTPS {
		env.HTTPS = "on"
	}

	logger := newLogger(deps.Stderr, &f.common)
	opts := contextOptions(cfg, f.includes.base, deps, logger)

	pc, err := pageinclude.NewContext(f.key, includesFrom(cfg), env, opts...)
	if err != nil {
		return nil, contextError(err)
	}
	return pc, nil
}
