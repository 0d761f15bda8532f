package helpers

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestPrincipalClaims(t *testing.T) {
	claims := &CustomClaims{
		Email:            "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "uid-1"},
	}
	claims.AppMetadata.Provider = "google"
	claims.AppMetadata.Admin = true

	p := &Principal{UID: "uid-1", Email: claims.Email, Claims: claims}

	if !p.AdminClaim() {
		t.Error("AdminClaim = false, want true")
	}
	if p.Provider() != "google" {
		t.Errorf("Provider = %q, want google", p.Provider())
	}
	if !p.IsOwner("uid-1") || p.IsOwner("uid-2") {
		t.Error("IsOwner should match only the principal's uid")
	}
}

func TestPrincipalDefaults(t *testing.T) {
	p := &Principal{UID: "uid-1"}

	if p.AdminClaim() {
		t.Error("AdminClaim = true without claims")
	}
	if p.Provider() != "password" {
		t.Errorf("Provider = %q, want password default", p.Provider())
	}
}
