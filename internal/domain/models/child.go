// internal/domain/models/child.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Child is a child enrolled at one organization. The default transport
// flags pre-populate new daily report rows.
type Child struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildID       string             `bson:"child_id" json:"childId"`
	OrgID         string             `bson:"org_id" json:"orgId"`
	Name          string             `bson:"name" json:"name"`
	NameCI        string             `bson:"name_ci" json:"-"`
	DefaultPickup bool               `bson:"default_pickup" json:"defaultPickup"`
	DefaultDrop   bool               `bson:"default_drop" json:"defaultDrop"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OwnerOrgID implements orgpolicy.OrgOwned.
func (c Child) OwnerOrgID() string { return c.OrgID }

// ChildPatch carries the fields of a partial child update.
type ChildPatch struct {
	OrgID         *string `json:"orgId,omitempty"`
	Name          *string `json:"name,omitempty"`
	DefaultPickup *bool   `json:"defaultPickup,omitempty"`
	DefaultDrop   *bool   `json:"defaultDrop,omitempty"`
}
