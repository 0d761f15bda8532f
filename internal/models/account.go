package models

import (
	"time"
)

type AccountStatus string

const (
	StatusActive  AccountStatus = "active"
	StatusPending AccountStatus = "pending"
	StatusBlocked AccountStatus = "blocked"
)

// Account is the profile document mirroring an identity. Keyed by the
// provider-issued identity id.
type Account struct {
	UID         string        `bson:"_id" json:"id"`
	Email       string        `bson:"email,omitempty" json:"email,omitempty"`
	DisplayName string        `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string        `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Status      AccountStatus `bson:"status,omitempty" json:"status,omitempty"`
	IsAdmin     bool          `bson:"isAdmin,omitempty" json:"isAdmin,omitempty"`
	IsVerified  bool          `bson:"isVerified,omitempty" json:"isVerified,omitempty"`
	Budget      float64       `bson:"budget,omitempty" json:"budget,omitempty"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`
	HousingType string        `bson:"housingType,omitempty" json:"housingType,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Provider    string        `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	VerifiedAt  *time.Time    `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
}
