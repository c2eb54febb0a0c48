package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultDeps())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
func runMain(ctx context.Context, args []string, deps *Dependencies) int {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "render":
		err = runRender(rest, deps)
	case "page":
		err = runPage(ctx, rest, deps)
	case "serve":
		err = runServe(ctx, rest, deps)
	case "init":
		err = runInit(rest, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "pageinclude %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", cmd)
		printUsage(deps.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}
