package timeouts

import (
	"testing"
	"time"
)

func TestConfigureFromEnv(t *testing.T) {
	defer Reset()
	t.Setenv("TIMEOUT_SHORT", "7s")
	t.Setenv("TIMEOUT_LONG", "not-a-duration")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("configured %d values, want 1", n)
	}
	if Short() != 7*time.Second {
		t.Errorf("Short() = %v, want 7s", Short())
	}
	if Long() != DefaultLong {
		t.Errorf("Long() = %v, want default", Long())
	}
}
