package pagedoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates Markdown to HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultTitle is used when a page has no title.
const DefaultTitle = "Document"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// Page is the input of Build.
type Page struct {
	Title    string
	Markdown string
	// Head is inserted verbatim before </head>. Usually the rendered
	// script tags followed by the stylesheet tags.
	Head string
}

// Builder converts Markdown pages to HTML documents.
type Builder struct {
	md goldmark.Markdown
}

// NewBuilder creates a Builder with GFM extensions and syntax highlighting.
func NewBuilder() *Builder {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // styled by the page's own stylesheets
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)
	return &Builder{md: md}
}

// Build renders page as an HTML5 document.
// Goldmark has no context support, so conversion runs in a goroutine
// and Build returns early when ctx is done.
func (b *Builder) Build(ctx context.Context, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	title := page.Title
	if title == "" {
		title = DefaultTitle
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := b.md.Convert([]byte(page.Markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		doc := fmt.Sprintf(pageTemplate, html.EscapeString(title), buf.String())
		done <- result{html: InjectHead(doc, page.Head)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
