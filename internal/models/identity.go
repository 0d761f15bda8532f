package models

import (
	"context"
	"time"

	"github.com/supabase-community/gotrue-go/types"
)

// IdentityRecord is the identity provider's view of a login principal,
// decoupled from the provider's wire types so services and the auth gate can
// be tested against fakes.
type IdentityRecord struct {
	UID           string     `json:"uid"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"displayName,omitempty"`
	PhotoURL      string     `json:"photoURL,omitempty"`
	EmailVerified bool       `json:"emailVerified"`
	Disabled      bool       `json:"disabled"`
	IsAdmin       bool       `json:"isAdmin"`
	Provider      string     `json:"provider"`
	LastSignInAt  *time.Time `json:"lastSignInTime,omitempty"`
	CreatedAt     time.Time  `json:"creationTime"`
}

type CreateIdentityParams struct {
	Email         string
	Password      string
	DisplayName   string
	EmailVerified bool
	AdminClaim    bool
}

type IdentityRepo interface {
	// CreateIdentity registers a new login principal with the provider.
	CreateIdentity(ctx context.Context, params CreateIdentityParams) (*IdentityRecord, error)
	// SignIn performs the password grant and returns the provider's token
	// response.
	SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error)
	GetIdentity(ctx context.Context, uid string) (*IdentityRecord, error)
	ListIdentities(ctx context.Context) ([]*IdentityRecord, error)
	// SetAdminClaim mirrors the admin flag into the identity's app metadata.
	// The account document remains the source of truth for authorization.
	SetAdminClaim(ctx context.Context, uid string, admin bool) error
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	// RevokeSessions invalidates every session issued to the identity.
	RevokeSessions(ctx context.Context, uid string) error
	// DeleteIdentity removes the identity record. Deleting an absent identity
	// is not an error.
	DeleteIdentity(ctx context.Context, uid string) error
}
