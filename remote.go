package pageinclude

import (
	"strconv"
	"strings"
	"time"
)

// remoteURLPrefixes mark a reference as already fully qualified.
// Matching is a literal prefix test, not scheme parsing.
var remoteURLPrefixes = []string{"https", "http", "//"}

// IsRemote reports whether ref starts with a remote URL prefix ("https",
// "http" or "//"). Such references are emitted verbatim by page contexts.
//
// The test is textual: "httpdocs/app.js" is remote, "js/http.js" is not.
func IsRemote(ref string) bool {
	for _, prefix := range remoteURLPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}

// cacheBustToken returns the query token appended to local URLs: the Unix
// time in seconds.
func cacheBustToken(now time.Time) string {
	return strconv.FormatInt(now.Unix(), 10)
}
