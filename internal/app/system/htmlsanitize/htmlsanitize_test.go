package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/welfarehub/internal/app/system/htmlsanitize"
)

func TestPlainText_Empty(t *testing.T) {
	if got := htmlsanitize.PlainText(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestPlainText_Unchanged(t *testing.T) {
	in := "デモFC事業所"
	if got := htmlsanitize.PlainText(in); got != in {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestPlainText_RemovesScript(t *testing.T) {
	got := htmlsanitize.PlainText("Sunrise<script>alert('xss')</script>")
	if got != "Sunrise" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestPlainText_KeepsAmpersand(t *testing.T) {
	got := htmlsanitize.PlainText("  Care & Play  ")
	if got != "Care & Play" {
		t.Errorf("got %q, want %q", got, "Care & Play")
	}
}
