package pageinclude

import (
	"fmt"
	"html"
)

// Tag templates, one per asset type. Every tag ends with a newline.
const (
	scriptTag     = `<script src="%s" type="text/javascript"></script>` + "\n"
	stylesheetTag = `<link href="%s" type="text/css" rel="stylesheet"/>` + "\n"
)

// tagTemplate returns the template for t.
func tagTemplate(t AssetType) string {
	if t == Stylesheet {
		return stylesheetTag
	}
	return scriptTag
}

// RenderTag formats url into the tag for t. The URL is attribute-escaped,
// so the emitted attribute matches the input byte for byte only when it
// contains none of & " ' < >. A query string such as "a=1&b=2" is written
// as "a=1&amp;b=2", which a browser decodes back to the original URL.
func RenderTag(t AssetType, url string) string {
	return fmt.Sprintf(tagTemplate(t), html.EscapeString(url))
}
