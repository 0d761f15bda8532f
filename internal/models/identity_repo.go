package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
)

// blockBanDuration is the ban applied when an account is blocked. Bans are
// lifted explicitly on unblock, so the duration only needs to outlive any
// realistic block.
const blockBanDuration = 100 * 365 * 24 * time.Hour

func (gt *GoTrueRepo) CreateIdentity(ctx context.Context, params CreateIdentityParams) (*IdentityRecord, error) {
	req := types.AdminCreateUserRequest{
		Email:        params.Email,
		Password:     &params.Password,
		EmailConfirm: params.EmailVerified,
	}
	if params.DisplayName != "" {
		req.UserMetadata = map[string]interface{}{
			"display_name": params.DisplayName,
		}
	}
	if params.AdminClaim {
		req.AppMetadata = map[string]interface{}{
			"admin": true,
		}
	}

	resp, err := gt.adminClient.AdminCreateUser(req)
	if err != nil {
		// Provider rejections (duplicate email, weak password) are caller
		// errors; surface the provider's message as the detail.
		return nil, apperr.Wrap(apperr.InvalidRequest, err)
	}
	return identityFromUser(resp.User), nil
}

func (gt *GoTrueRepo) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	resp, err := gt.anonClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, apperr.Newf(apperr.Unauthenticated, "failed to authenticate user: %v", err)
	}
	return resp, nil
}

func (gt *GoTrueRepo) GetIdentity(ctx context.Context, uid string) (*IdentityRecord, error) {
	id, err := uuid.Parse(uid)
	if err != nil {
		return nil, apperr.Newf(apperr.InvalidRequest, "invalid user id %q", uid)
	}

	resp, err := gt.adminClient.AdminGetUser(types.AdminGetUserRequest{UserID: id})
	if err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.New(apperr.NotFound, "identity not found")
		}
		return nil, fmt.Errorf("failed to get identity %s: %v", uid, err)
	}
	return identityFromUser(resp.User), nil
}

func (gt *GoTrueRepo) ListIdentities(ctx context.Context) ([]*IdentityRecord, error) {
	resp, err := gt.adminClient.AdminListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %v", err)
	}

	records := make([]*IdentityRecord, 0, len(resp.Users))
	for _, u := range resp.Users {
		records = append(records, identityFromUser(u))
	}
	return records, nil
}

func (gt *GoTrueRepo) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	id, err := uuid.Parse(uid)
	if err != nil {
		return apperr.Newf(apperr.InvalidRequest, "invalid user id %q", uid)
	}

	_, err = gt.adminClient.AdminUpdateUser(types.AdminUpdateUserRequest{
		UserID: id,
		AppMetadata: map[string]interface{}{
			"admin": admin,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to set admin claim for %s: %v", uid, err)
	}
	return nil
}

func (gt *GoTrueRepo) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	return gt.setBan(uid, disabled)
}

// RevokeSessions closes every session issued to the identity. GoTrue has no
// standalone revocation endpoint; a ban rejects refresh attempts and fails
// the live-record cross-check in the auth gate, which blocks still-unexpired
// access tokens.
func (gt *GoTrueRepo) RevokeSessions(ctx context.Context, uid string) error {
	return gt.setBan(uid, true)
}

func (gt *GoTrueRepo) DeleteIdentity(ctx context.Context, uid string) error {
	id, err := uuid.Parse(uid)
	if err != nil {
		return apperr.Newf(apperr.InvalidRequest, "invalid user id %q", uid)
	}

	if err := gt.adminClient.AdminDeleteUser(types.AdminDeleteUserRequest{UserID: id}); err != nil {
		if isNotFoundErr(err) {
			return nil
		}
		return fmt.Errorf("failed to delete identity %s: %v", uid, err)
	}
	return nil
}

func (gt *GoTrueRepo) setBan(uid string, banned bool) error {
	id, err := uuid.Parse(uid)
	if err != nil {
		return apperr.Newf(apperr.InvalidRequest, "invalid user id %q", uid)
	}

	duration := time.Duration(0)
	if banned {
		duration = blockBanDuration
	}
	banDuration := types.BanDurationTime(duration)
	_, err = gt.adminClient.AdminUpdateUser(types.AdminUpdateUserRequest{
		UserID:      id,
		BanDuration: &banDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to update ban for %s: %v", uid, err)
	}
	return nil
}

func isNotFoundErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "404")
}

func identityFromUser(u types.User) *IdentityRecord {
	rec := &IdentityRecord{
		UID:           u.ID.String(),
		Email:         u.Email,
		EmailVerified: u.EmailConfirmedAt != nil,
		Disabled:      u.BannedUntil != nil && u.BannedUntil.After(time.Now()),
		LastSignInAt:  u.LastSignInAt,
		CreatedAt:     u.CreatedAt,
		Provider:      "password",
	}

	if name, ok := u.UserMetadata["display_name"].(string); ok {
		rec.DisplayName = name
	}
	if photo, ok := u.UserMetadata["avatar_url"].(string); ok {
		rec.PhotoURL = photo
	}
	if admin, ok := u.AppMetadata["admin"].(bool); ok {
		rec.IsAdmin = admin
	}
	if provider, ok := u.AppMetadata["provider"].(string); ok && provider != "" {
		rec.Provider = provider
	} else if len(u.Identities) > 0 && u.Identities[0].Provider != "" {
		rec.Provider = u.Identities[0].Provider
	}

	return rec
}
