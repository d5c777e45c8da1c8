// Package inputval holds the boundary validators used by HTTP handlers.
// Invalid input is rejected with a message before it reaches the core.
package inputval

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dalemusser/welfarehub/internal/domain/models"
)

const clockLayout = "15:04"

// IsClock reports whether s is a zero-padded 24h wall-clock time (HH:MM).
func IsClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

// IsDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

// IsValidEmail reports whether s is a bare address (no display name).
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// Errors collects field messages in the order they were added.
type Errors struct {
	msgs []string
}

// Addf records a message.
func (e *Errors) Addf(format string, args ...any) {
	e.msgs = append(e.msgs, fmt.Sprintf(format, args...))
}

// Require records "<label> is required." when value is blank.
func (e *Errors) Require(value, label string) {
	if strings.TrimSpace(value) == "" {
		e.Addf("%s is required.", label)
	}
}

// MaxLen records a message when value is longer than max runes.
func (e *Errors) MaxLen(value string, max int, label string) {
	if len([]rune(value)) > max {
		e.Addf("%s must be at most %d characters.", label, max)
	}
}

// HasErrors reports whether any message was recorded.
func (e *Errors) HasErrors() bool { return len(e.msgs) > 0 }

// First returns the first message, or "".
func (e *Errors) First() string {
	if len(e.msgs) == 0 {
		return ""
	}
	return e.msgs[0]
}

// All returns every recorded message.
func (e *Errors) All() []string { return e.msgs }
