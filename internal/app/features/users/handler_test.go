package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/features/users"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func setup(t *testing.T) (*testutil.MemRepo[models.User, models.UserPatch], chi.Router) {
	t.Helper()
	repo := testutil.NewMemUsers()
	logger := zap.NewNop()
	h := users.NewHandler(repo, uierrors.NewErrorLogger(logger), logger)
	return repo, users.Routes(h, testutil.NewSessionManager(t))
}

func serve(t *testing.T, r chi.Router, user testutil.TestUser, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.WithUser(testutil.NewJSONRequest(t, method, target, body), user)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo, r := setup(t)

	rec := serve(t, r, testutil.HQUser(), "POST", "/", map[string]any{
		"email": " Staff@Example.com ", "role": "fc", "orgId": "org-a", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	all, err := repo.FetchAll(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 1)
	u := all[0]
	assert.Equal(t, "staff@example.com", u.Email)
	assert.Equal(t, models.RoleFC, u.Role)
	assert.True(t, u.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
}

func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad email", map[string]any{"email": "nope", "role": "FC", "orgId": "org-a"}},
		{"bad role", map[string]any{"email": "a@b.com", "role": "admin", "orgId": "org-a"}},
		{"missing org", map[string]any{"email": "a@b.com", "role": "FC"}},
		{"short password", map[string]any{"email": "a@b.com", "role": "FC", "orgId": "org-a", "password": "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, r := setup(t)
			rec := serve(t, r, testutil.HQUser(), "POST", "/", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, repo.Len())
		})
	}
}

func TestList_HidesPasswordHash(t *testing.T) {
	repo, r := setup(t)
	_, err := repo.Create(t.Context(), models.User{Email: "a@b.com", Role: "HQ", OrgID: "hq-org", PasswordHash: "secret-hash"})
	require.NoError(t, err)

	rec := serve(t, r, testutil.HQUser(), "GET", "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.Contains(t, rec.Body.String(), "a@b.com")
}

func TestEditUser_Deactivate(t *testing.T) {
	repo, r := setup(t)
	id, _ := repo.Create(t.Context(), models.User{Email: "a@b.com", Role: "FC", OrgID: "org-a", IsActive: true})

	rec := serve(t, r, testutil.HQUser(), "PATCH", "/"+id, map[string]any{"isActive": false})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	all, _ := repo.FetchAll(t.Context())
	assert.False(t, all[0].IsActive)
	assert.Equal(t, "a@b.com", all[0].Email)
}

func TestUsers_FCForbidden(t *testing.T) {
	_, r := setup(t)
	rec := serve(t, r, testutil.FCUser("org-a"), "GET", "/", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	repo, r := setup(t)
	id, _ := repo.Create(t.Context(), models.User{Email: "a@b.com", Role: "FC", OrgID: "org-a"})

	me := testutil.HQUser()
	me.ID = id
	rec := serve(t, r, me, "DELETE", "/"+id, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "self-delete refused")

	rec = serve(t, r, testutil.HQUser(), "DELETE", "/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, repo.Len())
}
