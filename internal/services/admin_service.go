package services

import (
	"context"
	"time"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type AdminService struct {
	identities models.IdentityRepo
	accounts   models.AccountRepo
}

func NewAdminService(identities models.IdentityRepo, accounts models.AccountRepo) *AdminService {
	return &AdminService{
		identities: identities,
		accounts:   accounts,
	}
}

// CheckAdmin reads the account's admin flag, defaulting to false when no
// profile document exists.
func (as *AdminService) CheckAdmin(ctx context.Context, uid string) (bool, error) {
	acct, err := as.accounts.GetAccount(ctx, uid)
	if apperr.IsKind(err, apperr.NotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return acct.IsAdmin, nil
}

// ListAllUsers merges every identity record with its account document.
// Identities with no document yet get a default pending profile persisted, so
// the merged view converges with the provider's account list. Materialization
// is idempotent: an existing document is never overwritten.
func (as *AdminService) ListAllUsers(ctx context.Context) (*models.AdminUserList, error) {
	identities, err := as.identities.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := as.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*models.AdminUser, 0, len(identities))
	for _, identity := range identities {
		acct, ok := accounts[identity.UID]
		if !ok {
			acct, err = as.materializeAccount(ctx, identity)
			if err != nil {
				return nil, err
			}
		}

		user := &models.AdminUser{
			ID:             identity.UID,
			Email:          identity.Email,
			DisplayName:    identity.DisplayName,
			PhotoURL:       acct.PhotoURL,
			EmailVerified:  identity.EmailVerified,
			Disabled:       identity.Disabled,
			LastSignInTime: identity.LastSignInAt,
			CreationTime:   identity.CreatedAt,
			Provider:       normalizeProvider(identity.Provider),
			IsAdmin:        acct.IsAdmin,
			IsVerified:     acct.IsVerified,
			Status:         acct.Status,
		}
		if user.DisplayName == "" {
			user.DisplayName = identity.Email
		}
		if user.PhotoURL == "" {
			user.PhotoURL = identity.PhotoURL
		}
		if user.Status == "" {
			user.Status = models.StatusPending
		}
		users = append(users, user)
	}

	list := &models.AdminUserList{
		Users: users,
		Total: len(users),
	}
	list.Stats = buildStats(users)
	return list, nil
}

func (as *AdminService) materializeAccount(ctx context.Context, identity *models.IdentityRecord) (*models.Account, error) {
	now := time.Now()
	acct := &models.Account{
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		Status:      models.StatusPending,
		IsVerified:  false,
		Provider:    normalizeProvider(identity.Provider),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := as.accounts.InsertAccountIfMissing(ctx, acct)
	if err != nil {
		return nil, err
	}
	if !created {
		// Lost the race to a concurrent materialization; use what is stored.
		return as.accounts.GetAccount(ctx, identity.UID)
	}
	return acct, nil
}

// ToggleBlock sets the account status and disables/enables the identity.
// Blocking also revokes every existing session, so tokens issued before the
// block stop working immediately.
func (as *AdminService) ToggleBlock(ctx context.Context, uid string, blocked bool) error {
	status := models.StatusActive
	if blocked {
		status = models.StatusBlocked
	}

	fields := bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}
	if err := as.accounts.MergeAccount(ctx, uid, fields); err != nil {
		return err
	}

	if err := as.identities.SetDisabled(ctx, uid, blocked); err != nil {
		return err
	}
	if blocked {
		return as.identities.RevokeSessions(ctx, uid)
	}
	return nil
}

// VerifyUser activates an account and stamps its verification time.
func (as *AdminService) VerifyUser(ctx context.Context, uid string) error {
	now := time.Now()
	fields := bson.M{
		"status":     models.StatusActive,
		"isVerified": true,
		"verifiedAt": now,
		"updatedAt":  now,
	}
	return as.accounts.MergeAccount(ctx, uid, fields)
}

// DeleteAuth removes the identity record. The profile document is left in
// place, and deleting an already-absent identity succeeds.
func (as *AdminService) DeleteAuth(ctx context.Context, uid string) error {
	return as.identities.DeleteIdentity(ctx, uid)
}

func normalizeProvider(provider string) string {
	switch provider {
	case "", "email":
		return "password"
	case "google.com":
		return "google"
	case "facebook.com":
		return "facebook"
	default:
		return provider
	}
}

func buildStats(users []*models.AdminUser) models.AdminStats {
	stats := models.AdminStats{Total: len(users)}
	for _, u := range users {
		switch u.Status {
		case models.StatusActive:
			stats.Active++
		case models.StatusPending:
			stats.Pending++
		case models.StatusBlocked:
			stats.Blocked++
		}
		switch u.Provider {
		case "password":
			stats.Providers.Password++
		case "google":
			stats.Providers.Google++
		case "facebook":
			stats.Providers.Facebook++
		}
	}
	return stats
}
