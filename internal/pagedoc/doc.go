// Package pagedoc renders a standalone HTML page around generated include markup.
//
// A page body is written in Markdown and converted with goldmark (GFM,
// footnotes, heading IDs and chroma syntax highlighting using CSS classes).
// The include markup for the page is placed in the document head, scripts
// first and then stylesheets, before the closing head tag.
package pagedoc
