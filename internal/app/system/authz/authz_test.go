package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/app/system/authz"
)

func reqWith(role, org string) *http.Request {
	req := httptest.NewRequest("GET", "/test", nil)
	return auth.WithTestUser(req, &auth.SessionUser{ID: "u1", Role: role, OrgID: org})
}

func TestUserCtx(t *testing.T) {
	role, org, ok := authz.UserCtx(reqWith("fc", "demo-fc-org"))
	if !ok {
		t.Fatal("expected ok")
	}
	if role != "FC" {
		t.Errorf("role: got %q, want %q", role, "FC")
	}
	if org != "demo-fc-org" {
		t.Errorf("org: got %q, want %q", org, "demo-fc-org")
	}

	if _, _, ok := authz.UserCtx(httptest.NewRequest("GET", "/", nil)); ok {
		t.Error("expected ok=false without user")
	}
}

func TestIsHQ_IsFC(t *testing.T) {
	tests := []struct {
		name      string
		req       *http.Request
		wantHQ    bool
		wantFC    bool
		wantOrgID string
	}{
		{"hq", reqWith("HQ", "hq-org"), true, false, "hq-org"},
		{"fc", reqWith("FC", "demo-fc-org"), false, true, "demo-fc-org"},
		{"unknown role", reqWith("guest", "x"), false, false, "x"},
		{"no user", httptest.NewRequest("GET", "/", nil), false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authz.IsHQ(tt.req); got != tt.wantHQ {
				t.Errorf("IsHQ: got %v, want %v", got, tt.wantHQ)
			}
			if got := authz.IsFC(tt.req); got != tt.wantFC {
				t.Errorf("IsFC: got %v, want %v", got, tt.wantFC)
			}
			if got := authz.UserOrgID(tt.req); got != tt.wantOrgID {
				t.Errorf("UserOrgID: got %q, want %q", got, tt.wantOrgID)
			}
		})
	}
}

func TestHasAnyRole(t *testing.T) {
	req := reqWith("FC", "o")
	if !authz.HasAnyRole(req, "hq", " fc ") {
		t.Error("expected FC to match")
	}
	if authz.HasAnyRole(req, "HQ") {
		t.Error("expected FC not to match HQ")
	}
}
