// Package normalize canonicalizes user-entered identity fields before they
// are stored or compared.
package normalize

import "strings"

// Email trims and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name and collapses internal runs of whitespace.
// Case is preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Role upper-cases a role tag so "hq" and " Fc " compare equal to the
// canonical "HQ" / "FC".
func Role(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
