package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/welfarehub/internal/app/features/logout"
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"go.uber.org/zap"
)

func TestServeLogout_ExpiresCookie(t *testing.T) {
	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	h := logout.NewHandler(sm, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeLogout(rec, httptest.NewRequest("POST", "/logout", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
			if c.MaxAge >= 0 {
				t.Errorf("expected expiring cookie, got MaxAge %d", c.MaxAge)
			}
		}
	}
	if !found {
		t.Error("expected session cookie to be cleared")
	}
}

func TestServeLogout_HTMX(t *testing.T) {
	sm, _ := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", time.Hour, false, zap.NewNop())
	h := logout.NewHandler(sm, zap.NewNop())

	req := httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeLogout(rec, req)

	if got := rec.Header().Get("HX-Redirect"); got != "/" {
		t.Errorf("HX-Redirect: got %q, want %q", got, "/")
	}
}
