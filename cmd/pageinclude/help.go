package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pageinclude <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Print the script and stylesheet tags of a page")
	fmt.Fprintln(w, "  page       Render a markdown file as an HTML page with its tags")
	fmt.Fprintln(w, "  serve      Serve pages and assets over HTTP")
	fmt.Fprintln(w, "  init       Write a starter config file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pageinclude help <command>' for details on a specific command.")
}

func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -r, --root <dir>          Document root (default: .)")
	fmt.Fprintln(w, "      --host <host>         Host used in URLs (default: localhost:8080)")
	fmt.Fprintln(w, "      --https               Render https:// URLs")
	fmt.Fprintln(w, "      --script-path <path>  Page script path, e.g. /shop/index.php")
	fmt.Fprintln(w)
}

func printIncludeFlags(w io.Writer) {
	fmt.Fprintln(w, "Includes:")
	fmt.Fprintln(w, "      --js <ref>            Global script include (repeatable)")
	fmt.Fprintln(w, "      --css <ref>           Global stylesheet include (repeatable)")
	fmt.Fprintln(w, "      --cache-bust          Append ?<unix seconds> to local URLs")
	fmt.Fprintln(w, "      --base                No remote URLs, no cache-busting")
	fmt.Fprintln(w)
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log discovery details")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pageinclude render [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the <script> tags then the <link> tags of a page: global includes")
	fmt.Fprintln(w, "first, then files found in js/<key>/ and css/<key>/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -k, --key <key>           Context key (page name)")
	fmt.Fprintln(w)
	printSiteFlags(w)
	printIncludeFlags(w)
	printCommonFlags(w)
}

// printPageUsage prints usage for the page command.
func printPageUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pageinclude page <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a markdown file as an HTML page. The context key defaults to")
	fmt.Fprintln(w, "the file name without extension.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: stdout)")
	fmt.Fprintln(w, "  -t, --title <s>           Page title (default: first heading)")
	fmt.Fprintln(w, "  -k, --key <key>           Context key")
	fmt.Fprintln(w)
	printSiteFlags(w)
	printIncludeFlags(w)
	printCommonFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pageinclude serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve pages and asset directories. GET /<key> renders <key>.md with the")
	fmt.Fprintln(w, "tags of that key; /metrics and /healthz are always available.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -r, --root <dir>          Document root (default: .)")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default: :8080)")
	fmt.Fprintln(w, "      --page <key>          Context key for / (default: index)")
	fmt.Fprintln(w)
	printIncludeFlags(w)
	printCommonFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pageinclude init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       File to write (default: site.yaml)")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(deps.Stdout)
	case "page":
		printPageUsage(deps.Stdout)
	case "serve":
		printServeUsage(deps.Stdout)
	case "init":
		printInitUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: pageinclude version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: pageinclude help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
