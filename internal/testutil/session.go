package testutil

import (
	"testing"
	"time"

	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"go.uber.org/zap"
)

// TestSessionKey is a 32+ character key for test session managers.
const TestSessionKey = "test-session-key-must-be-32-chars-long"

// NewSessionManager returns a non-secure session manager for route tests.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(TestSessionKey, "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return sm
}
