package userinfo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/welfarehub/internal/app/features/userinfo"
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
)

func TestServeMe_NotAuthenticated(t *testing.T) {
	rec := httptest.NewRecorder()
	userinfo.NewHandler().ServeMe(rec, httptest.NewRequest("GET", "/api/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestServeMe_Authenticated(t *testing.T) {
	want := auth.SessionUser{ID: "u1", UID: "demo-fc-user", Email: "demo@fc.com", Role: "FC", OrgID: "demo-fc-org"}
	req := auth.WithTestUser(httptest.NewRequest("GET", "/api/me", nil), &want)
	rec := httptest.NewRecorder()

	userinfo.NewHandler().ServeMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var got auth.SessionUser
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
