// internal/domain/models/addon.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddOnMaster is a billable supplemental service. Basic add-ons always
// apply; the rest are selected per child per day.
type AddOnMaster struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AddOnID   string             `bson:"add_on_id" json:"addOnId"`
	Name      string             `bson:"name" json:"name"`
	UnitValue int                `bson:"unit_value" json:"unitValue"`
	IsBasic   bool               `bson:"is_basic" json:"isBasic"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// AddOnPatch carries the fields of a partial add-on update.
type AddOnPatch struct {
	Name      *string `json:"name,omitempty"`
	UnitValue *int    `json:"unitValue,omitempty"`
	IsBasic   *bool   `json:"isBasic,omitempty"`
}
