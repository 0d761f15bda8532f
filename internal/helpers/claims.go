package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
		Admin     bool     `json:"admin,omitempty"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Principal is the verified identity the auth gate attaches to the request
// context. UID is the provider-issued identity id (token subject).
type Principal struct {
	UID    string
	Email  string
	Claims *CustomClaims
}

// AdminClaim reports the admin flag mirrored into the token's app metadata.
// It is a signal only; authorization reads the account document.
func (p *Principal) AdminClaim() bool {
	return p.Claims != nil && p.Claims.AppMetadata.Admin
}

func (p *Principal) Provider() string {
	if p.Claims == nil || p.Claims.AppMetadata.Provider == "" {
		return "password"
	}
	return p.Claims.AppMetadata.Provider
}

func (p *Principal) IsOwner(uid string) bool {
	return p.UID == uid
}
