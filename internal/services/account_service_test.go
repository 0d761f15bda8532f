package services

import (
	"context"
	"testing"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/models"
)

func TestSignupMirrorsProfileDocument(t *testing.T) {
	identities := newFakeIdentityRepo()
	identities.nextUID = "uid-1"
	accounts := newFakeAccountRepo()
	svc := NewAccountService(identities, accounts)

	record, err := svc.Signup(context.Background(), SignupRequest{
		Email:     "jane@example.com",
		Password:  "Str0ngPass",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if record.UID != "uid-1" {
		t.Fatalf("record.UID = %q, want uid-1", record.UID)
	}

	fields, ok := accounts.merged["uid-1"]
	if !ok {
		t.Fatal("no profile document merged under the provider uid")
	}
	if fields["email"] != "jane@example.com" {
		t.Errorf("email = %v, want jane@example.com", fields["email"])
	}
	if fields["displayName"] != "Jane Doe" {
		t.Errorf("displayName = %v, want Jane Doe", fields["displayName"])
	}
	if fields["status"] != models.StatusActive {
		t.Errorf("status = %v, want %v", fields["status"], models.StatusActive)
	}
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	identities := newFakeIdentityRepo()
	svc := NewAccountService(identities, newFakeAccountRepo())

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:     "jane@example.com",
		Password:  "short",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if !apperr.IsKind(err, apperr.InvalidRequest) {
		t.Fatalf("err = %v, want InvalidRequest", err)
	}
	if len(identities.created) != 0 {
		t.Fatal("weak password must not reach the identity provider")
	}
}

func TestUpdateProfileParsesBudget(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewAccountService(newFakeIdentityRepo(), accounts)

	err := svc.UpdateProfile(context.Background(), "uid-1", ProfileRequest{
		Budget:   "750.50",
		Location: "Lyon",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got := accounts.merged["uid-1"]["budget"]; got != 750.50 {
		t.Errorf("budget = %v, want 750.50", got)
	}

	err = svc.UpdateProfile(context.Background(), "uid-1", ProfileRequest{Budget: "not-a-number"})
	if !apperr.IsKind(err, apperr.InvalidRequest) {
		t.Fatalf("err = %v, want InvalidRequest", err)
	}
}

func TestCheckStatusDefaultsToActive(t *testing.T) {
	svc := NewAccountService(newFakeIdentityRepo(), newFakeAccountRepo())

	status, err := svc.CheckStatus(context.Background(), "no-profile-yet")
	if err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if status != models.StatusActive {
		t.Errorf("status = %q, want %q", status, models.StatusActive)
	}
}

func TestCheckStatusBlockedAccount(t *testing.T) {
	accounts := newFakeAccountRepo()
	accounts.accounts["uid-1"] = &models.Account{UID: "uid-1", Status: models.StatusBlocked}
	svc := NewAccountService(newFakeIdentityRepo(), accounts)

	_, err := svc.CheckStatus(context.Background(), "uid-1")
	if !apperr.IsKind(err, apperr.Forbidden) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
	if code := apperr.CodeOf(err); code != "account-blocked" {
		t.Errorf("code = %q, want account-blocked", code)
	}
}

func TestCreateAdminGrantsClaimAndDocument(t *testing.T) {
	identities := newFakeIdentityRepo()
	identities.nextUID = "admin-1"
	accounts := newFakeAccountRepo()
	svc := NewAccountService(identities, accounts)

	record, err := svc.CreateAdmin(context.Background(), CreateAdminRequest{
		Email:    "root@example.com",
		Password: "Sup3rSecret",
	})
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	if len(identities.created) != 1 {
		t.Fatalf("created %d identities, want 1", len(identities.created))
	}
	params := identities.created[0]
	if !params.EmailVerified || !params.AdminClaim {
		t.Errorf("identity params = %+v, want EmailVerified and AdminClaim set", params)
	}

	acct, ok := accounts.accounts[record.UID]
	if !ok {
		t.Fatal("no account document written for the admin")
	}
	if !acct.IsAdmin || !acct.IsVerified || acct.Status != models.StatusActive {
		t.Errorf("account = %+v, want admin, verified and active", acct)
	}
}
