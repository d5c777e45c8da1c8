package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID    string
	UID   string
	Email string
	Role  string
	OrgID string
}

// HQUser returns a TestUser with the HQ role.
func HQUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		UID:   "test-hq-user",
		Email: "hq@test.com",
		Role:  models.RoleHQ,
		OrgID: "hq-org",
	}
}

// FCUser returns a TestUser with the FC role at orgID.
func FCUser(orgID string) TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		UID:   "test-fc-user",
		Email: "fc@test.com",
		Role:  models.RoleFC,
		OrgID: orgID,
	}
}

// WithUser adds a user to the request context for testing authenticated handlers.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    user.ID,
		UID:   user.UID,
		Email: user.Email,
		Role:  user.Role,
		OrgID: user.OrgID,
	})
}

// NewJSONRequest creates a request whose body is body encoded as JSON.
// A nil body sends no content.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

// DecodeJSON decodes the recorder body into v, failing the test on error.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
}
