// Package orgpolicy decides which organization's data a user may see.
//
// Authorization rules:
//   - HQ users see every organization
//   - FC users see only their own organization
//   - Anyone else (including no user) sees nothing
//
// A denied view is never an error: it is an empty result.
package orgpolicy

import (
	"net/http"
	"strings"

	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// OrgOwned is any record that belongs to one organization.
type OrgOwned interface {
	OwnerOrgID() string
}

// Scope represents the organizations a user can access.
type Scope struct {
	// CanView indicates whether the user can view org-owned data at all.
	CanView bool
	// AllOrgs indicates whether the user can see data from all organizations.
	// If false, OrgID is the only visible organization.
	AllOrgs bool
	OrgID   string
}

// ScopeFor derives the scope of u. A nil user cannot view anything.
func ScopeFor(u *auth.SessionUser) Scope {
	if u == nil {
		return Scope{}
	}
	switch strings.ToUpper(strings.TrimSpace(u.Role)) {
	case models.RoleHQ:
		return Scope{CanView: true, AllOrgs: true}
	case models.RoleFC:
		if u.OrgID == "" {
			return Scope{}
		}
		return Scope{CanView: true, OrgID: u.OrgID}
	default:
		return Scope{}
	}
}

// FromRequest is ScopeFor applied to the request's current user.
func FromRequest(r *http.Request) Scope {
	u, _ := auth.CurrentUser(r)
	return ScopeFor(u)
}

// Allows reports whether orgID is visible under the scope.
func (s Scope) Allows(orgID string) bool {
	if !s.CanView {
		return false
	}
	return s.AllOrgs || s.OrgID == orgID
}

// Filter returns the visible subset of items, preserving order. For an
// all-orgs scope it returns items unchanged.
func Filter[T OrgOwned](s Scope, items []T) []T {
	if !s.CanView {
		return []T{}
	}
	if s.AllOrgs {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.OwnerOrgID() == s.OrgID {
			out = append(out, it)
		}
	}
	return out
}

// MongoFilter narrows base (which may be nil) to the scope. The second
// result is false when nothing is visible and the query should be skipped.
func (s Scope) MongoFilter(base bson.M) (bson.M, bool) {
	if !s.CanView {
		return nil, false
	}
	out := bson.M{}
	for k, v := range base {
		out[k] = v
	}
	if !s.AllOrgs {
		out["org_id"] = s.OrgID
	}
	return out, true
}

// ResolveOrg picks the organization an operation should act on. FC users
// are always pinned to their own organization whatever they requested; HQ
// users get the requested one. The result is "" when nothing is visible.
func (s Scope) ResolveOrg(requested string) string {
	switch {
	case !s.CanView:
		return ""
	case s.AllOrgs:
		return requested
	default:
		return s.OrgID
	}
}
