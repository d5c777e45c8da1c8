package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowAndExpire(t *testing.T) {
	now := time.Date(2024, 12, 18, 9, 0, 0, 0, time.UTC)
	l := New(2, time.Minute)
	l.now = func() time.Time { return now }

	if !l.Allow("k") || !l.Allow("k") {
		t.Fatal("first two requests should be allowed")
	}
	if l.Allow("k") {
		t.Error("third request should be limited")
	}
	if !l.Allow("other") {
		t.Error("other keys are counted separately")
	}

	now = now.Add(61 * time.Second)
	if !l.Allow("k") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestLoginLimiter_PerEmail(t *testing.T) {
	ll := NewLoginLimiterWithConfig(100, time.Minute, 2, time.Minute)
	req := httptest.NewRequest("POST", "/login", nil)

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(req, "Demo@FC.com"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if ok, reason := ll.Check(req, "demo@fc.com"); ok || reason == "" {
		t.Error("third attempt for same email should be limited with a reason")
	}
	ll.ResetEmail("demo@fc.com")
	if ok, _ := ll.Check(req, "demo@fc.com"); !ok {
		t.Error("attempt after reset should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Errorf("RemoteAddr: got %q", got)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.9" {
		t.Errorf("X-Forwarded-For: got %q", got)
	}
}
