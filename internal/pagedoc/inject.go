package pagedoc

import "strings"

// InjectHead inserts markup into an HTML document.
// Tries </head> first, then after <body>, then prepends to the document.
// Matching is case-insensitive.
func InjectHead(htmlContent, markup string) string {
	if markup == "" {
		return htmlContent
	}

	lower := strings.ToLower(htmlContent)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return htmlContent[:idx] + markup + htmlContent[idx:]
	}

	if idx := strings.Index(lower, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			pos := idx + closeIdx + 1
			return htmlContent[:pos] + markup + htmlContent[pos:]
		}
	}

	return markup + htmlContent
}
