// Package pageinclude renders the <script> and <link> tags of a web page from
// global includes and page-specific asset files found by naming convention.
//
// # Quick Start
//
// Build a context per request, then embed its markup in the page head:
//
//	ctx, err := pageinclude.NewPageContext("index", pageinclude.Includes{
//	    JS:  []string{"js/global1.js", "https://cdn.example.com/lib.js"},
//	    CSS: []string{"css/global1.css"},
//	}, pageinclude.EnvironmentFromRequest(r, "/var/www/site"))
//	if err != nil {
//	    return err
//	}
//	head := ctx.JS() + ctx.CSS()
//
// # Rendering
//
// For each asset type, rendering runs two passes:
//
//  1. Global pass: one tag per declared include, in declared order.
//  2. Discovery pass: one tag per file in the page directory (js/<key> or
//     css/<key>, relative to the site root), skipping files whose relative
//     path is already a declared include of the same type.
//
// Local references resolve below HTTPRoot(), protocol://host/<domain trail>.
// The domain trail is the directory of the page script below the document
// root, e.g. "shop/" for "/shop/index.php".
//
// Tags have a fixed form, one per line:
//
//	<script src="URL" type="text/javascript"></script>
//	<link href="URL" type="text/css" rel="stylesheet"/>
//
// # Variants
//
// NewContext resolves every include locally. NewPageContext adds two
// capabilities: includes starting with "https", "http" or "//" are emitted
// verbatim, and SetCacheBust(true) appends "?<unix seconds>" to local URLs.
//
// # Failure Model
//
// Rendering never fails on runtime conditions. A missing page directory,
// an unreadable directory, or empty environment values produce fewer tags or
// degraded URLs instead of errors. Misconfiguration (bad context key, empty
// include entry, unknown asset type) is reported at construction or by Render.
//
// # Discovery Backends
//
// The default backend lists the OS filesystem below the document root.
// Use WithLister with NewFSLister to discover from an embed.FS or a fake.
package pageinclude
