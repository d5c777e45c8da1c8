// Package htmlsanitize strips markup from free-text fields (names,
// addresses) before they are persisted.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes every HTML element from s and returns trimmed text.
// Entities escaped by the policy are decoded again so "A & B" round-trips.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
