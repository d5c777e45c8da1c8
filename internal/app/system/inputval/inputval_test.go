package inputval

import "testing"

func TestIsClock(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:30", true},
		{"00:00", true},
		{"23:59", true},
		{"9:30", false},
		{"24:00", false},
		{"12:60", false},
		{"", false},
		{"noon", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsClock(tt.in); got != tt.want {
				t.Errorf("IsClock(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-12-17", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024/12/17", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsDate(tt.in); got != tt.want {
				t.Errorf("IsDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"demo@hq.com", true},
		{"user+tag@example.com", true},
		{"", false},
		{"user", false},
		{"@example.com", false},
		{"User Name <user@example.com>", false},
		{"user @example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	var e Errors
	e.Require("  ", "Name")
	e.MaxLen("abcdef", 3, "Code")
	if !e.HasErrors() {
		t.Fatal("expected errors")
	}
	if e.First() != "Name is required." {
		t.Errorf("First() = %q", e.First())
	}
	if len(e.All()) != 2 {
		t.Errorf("expected 2 messages, got %d", len(e.All()))
	}
}
