// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// UserCtx returns the user's role (upper-cased), owning orgId, and a found
// flag. Without a user in context it returns "", "", false.
func UserCtx(r *http.Request) (role string, orgID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", false
	}
	return strings.ToUpper(strings.TrimSpace(user.Role)), user.OrgID, true
}

// IsHQ reports whether the current request's user is an HQ administrator.
func IsHQ(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == models.RoleHQ
}

// IsFC reports whether the current request's user is a facility administrator.
func IsFC(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == models.RoleFC
}

// UserOrgID returns the current user's orgId, or "" when not signed in.
func UserOrgID(r *http.Request) string {
	_, orgID, _ := UserCtx(r)
	return orgID
}

// HasAnyRole reports whether the current request's user has any of the given roles.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToUpper(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
