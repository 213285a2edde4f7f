// Package parsing turns raw listing records into their normalized,
// export-ready projection and applies the query predicates.
package parsing

import (
	"regexp"
	"strings"
)

// tagPattern matches one angle-bracket-delimited markup tag.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripTags removes markup tags from free text and trims surrounding
// whitespace. It is idempotent; empty input yields empty output.
func StripTags(text string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(text, ""))
}
