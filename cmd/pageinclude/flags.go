package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags override the serving environment.
type siteFlags struct {
	root       string
	host       string
	https      bool
	scriptPath string
}

// includeFlags add global includes on top of the config file.
type includeFlags struct {
	js        []string
	css       []string
	cacheBust bool
	base      bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	site     siteFlags
	includes includeFlags
	key      string

	fs *flag.FlagSet // kept to detect explicitly set booleans
}

// pageFlags holds all flags for the page command.
type pageFlags struct {
	renderFlags
	output string
	title  string
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common   commonFlags
	includes includeFlags
	root     string
	addr     string
	page     string

	fs *flag.FlagSet
}

// initFlags holds all flags for the init command.
type initFlags struct {
	output string
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log discovery details")
}

// addSiteFlags adds serving-environment flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.root, "root", "r", "", "document root directory")
	fs.StringVar(&f.host, "host", "", "host used in URLs (e.g. example.com:8080)")
	fs.BoolVar(&f.https, "https", false, "render https:// URLs")
	fs.StringVar(&f.scriptPath, "script-path", "", "page script URL path (sets the domain trail)")
}

// addIncludeFlags adds include and URL flags to a FlagSet.
func addIncludeFlags(fs *flag.FlagSet, f *includeFlags) {
	fs.StringArrayVar(&f.js, "js", nil, "global script include (repeatable)")
	fs.StringArrayVar(&f.css, "css", nil, "global stylesheet include (repeatable)")
	fs.BoolVar(&f.cacheBust, "cache-bust", false, "append ?<unix seconds> to local URLs")
	fs.BoolVar(&f.base, "base", false, "base variant: no remote URLs, no cache-busting")
}

func newRenderFlagSet(name string, f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVarP(&f.key, "key", "k", "", "context key (page name)")
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addIncludeFlags(fs, &f.includes)
	f.fs = fs
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet("render", f)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePageFlags parses page command flags and returns positional args.
func parsePageFlags(args []string) (*pageFlags, []string, error) {
	f := &pageFlags{}
	fs := newRenderFlagSet("page", &f.renderFlags)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: stdout)")
	fs.StringVarP(&f.title, "title", "t", "", "page title (default: first heading)")
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addIncludeFlags(fs, &f.includes)
	fs.StringVarP(&f.root, "root", "r", "", "document root directory")
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default: :8080)")
	fs.StringVar(&f.page, "page", "", "context key for / (default: index)")
	fs.Usage = func() {}
	f.fs = fs

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "site.yaml", "config file to write")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
