package models

import (
	"time"
)

// AdminUser is the merged per-user view served to the admin dashboard: the
// identity record joined with its account document.
type AdminUser struct {
	ID             string        `json:"id"`
	Email          string        `json:"email,omitempty"`
	DisplayName    string        `json:"displayName,omitempty"`
	PhotoURL       string        `json:"photoURL,omitempty"`
	EmailVerified  bool          `json:"emailVerified"`
	Disabled       bool          `json:"disabled"`
	LastSignInTime *time.Time    `json:"lastSignInTime,omitempty"`
	CreationTime   time.Time     `json:"creationTime"`
	Provider       string        `json:"provider"`
	IsAdmin        bool          `json:"isAdmin"`
	IsVerified     bool          `json:"isVerified"`
	Status         AccountStatus `json:"status"`
}

type ProviderStats struct {
	Password int `json:"password"`
	Google   int `json:"google"`
	Facebook int `json:"facebook"`
}

type AdminStats struct {
	Total     int           `json:"total"`
	Active    int           `json:"active"`
	Pending   int           `json:"pending"`
	Blocked   int           `json:"blocked"`
	Providers ProviderStats `json:"providers"`
}

type AdminUserList struct {
	Users []*AdminUser `json:"users"`
	Total int          `json:"total"`
	Stats AdminStats   `json:"stats"`
}
