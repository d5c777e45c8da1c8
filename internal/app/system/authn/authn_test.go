package authn_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/welfarehub/internal/app/system/authn"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func userWithPassword(t *testing.T, password string, active bool) *models.User {
	t.Helper()
	hash, err := authn.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:           primitive.NewObjectID(),
		UID:          "u1",
		Email:        "staff@example.com",
		Role:         models.RoleFC,
		OrgID:        "demo-fc-org",
		IsActive:     active,
		PasswordHash: hash,
	}
}

func TestLocalAuthenticator(t *testing.T) {
	ctx := context.Background()
	u := userWithPassword(t, "s3cret-pass", true)

	users := new(mockUsers)
	users.On("GetByEmail", ctx, "staff@example.com").Return(u, nil)
	users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, mongo.ErrNoDocuments)
	a := authn.LocalAuthenticator{Users: users}

	id, err := a.Authenticate(ctx, " Staff@Example.com ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, authn.Identity{ID: u.ID.Hex(), UID: "u1", Email: "staff@example.com", Role: models.RoleFC, OrgID: "demo-fc-org"}, id)

	_, err = a.Authenticate(ctx, "staff@example.com", "wrong")
	assert.ErrorIs(t, err, authn.ErrInvalidCredentials)

	_, err = a.Authenticate(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, authn.ErrInvalidCredentials)

	users.AssertExpectations(t)
}

func TestLocalAuthenticator_Inactive(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)
	users.On("GetByEmail", ctx, "staff@example.com").Return(userWithPassword(t, "pw-123456", false), nil)

	_, err := authn.LocalAuthenticator{Users: users}.Authenticate(ctx, "staff@example.com", "pw-123456")
	assert.ErrorIs(t, err, authn.ErrInactive)
}

func TestDemoAuthenticator(t *testing.T) {
	ctx := context.Background()
	var a authn.DemoAuthenticator

	id, err := a.Authenticate(ctx, "demo@hq.com", "demo12345")
	require.NoError(t, err)
	assert.Equal(t, models.RoleHQ, id.Role)
	assert.Equal(t, "hq-org", id.OrgID)

	id, err = a.Authenticate(ctx, "DEMO@fc.com", "demo12345")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFC, id.Role)
	assert.Equal(t, "demo-fc-org", id.OrgID)

	_, err = a.Authenticate(ctx, "demo@fc.com", "wrong")
	assert.ErrorIs(t, err, authn.ErrInvalidCredentials)
	_, err = a.Authenticate(ctx, "someone@fc.com", "demo12345")
	assert.ErrorIs(t, err, authn.ErrInvalidCredentials)
}

type fixedAuth struct {
	id  authn.Identity
	err error
}

func (f fixedAuth) Authenticate(context.Context, string, string) (authn.Identity, error) {
	return f.id, f.err
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("db down")

	id, err := authn.Chain{
		fixedAuth{err: authn.ErrInvalidCredentials},
		fixedAuth{id: authn.Identity{UID: "second"}},
	}.Authenticate(ctx, "e", "p")
	require.NoError(t, err)
	assert.Equal(t, "second", id.UID)

	_, err = authn.Chain{
		fixedAuth{err: boom},
		fixedAuth{id: authn.Identity{UID: "never"}},
	}.Authenticate(ctx, "e", "p")
	assert.ErrorIs(t, err, boom)

	_, err = authn.Chain{fixedAuth{err: authn.ErrInvalidCredentials}}.Authenticate(ctx, "e", "p")
	assert.ErrorIs(t, err, authn.ErrInvalidCredentials)

	_, err = authn.Chain{}.Authenticate(ctx, "e", "p")
	assert.ErrorIs(t, err, authn.ErrInvalidCredentials)
}

func TestIdPAuthenticator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Form.Get("grant_type") != "password" || r.Form.Get("password") != "idp-pass" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	u := &models.User{ID: primitive.NewObjectID(), UID: "hq1", Email: "boss@example.com", Role: models.RoleHQ, OrgID: "hq-org", IsActive: true}
	users := new(mockUsers)
	users.On("GetByEmail", mock.Anything, "boss@example.com").Return(u, nil)

	a := authn.NewIdPAuthenticator(srv.URL, "client", "secret", users)
	a.HTTPClient = srv.Client()

	id, err := a.Authenticate(context.Background(), "boss@example.com", "idp-pass")
	require.NoError(t, err)
	assert.Equal(t, "hq1", id.UID)
	assert.Equal(t, models.RoleHQ, id.Role)

	_, err = a.Authenticate(context.Background(), "boss@example.com", "nope")
	assert.ErrorIs(t, err, authn.ErrInvalidCredentials)
}
