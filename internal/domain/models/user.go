// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles.
const (
	RoleHQ = "HQ" // cross-organization administrator
	RoleFC = "FC" // single-organization administrator
)

// ValidRole reports whether r is RoleHQ or RoleFC.
func ValidRole(r string) bool {
	return r == RoleHQ || r == RoleFC
}

// User is a staff account. HQ users see every organization; FC users only
// ever see their own OrgID.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID          string             `bson:"uid" json:"uid"`
	OrgID        string             `bson:"org_id" json:"orgId"`
	Role         string             `bson:"role" json:"role"` // HQ | FC
	Email        string             `bson:"email" json:"email"`
	IsActive     bool               `bson:"is_active" json:"isActive"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// OwnerOrgID implements orgpolicy.OrgOwned.
func (u User) OwnerOrgID() string { return u.OrgID }

// UserPatch carries the fields of a partial user update.
type UserPatch struct {
	OrgID        *string `json:"orgId,omitempty"`
	Role         *string `json:"role,omitempty"`
	Email        *string `json:"email,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
	PasswordHash *string `json:"-"`
}
