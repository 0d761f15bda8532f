package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/helpers"
	"github.com/colocapp/coloc-api/internal/models"
	"github.com/supabase-community/gotrue-go/types"
	"go.mongodb.org/mongo-driver/bson"
)

type AccountService struct {
	identities models.IdentityRepo
	accounts   models.AccountRepo
}

func NewAccountService(identities models.IdentityRepo, accounts models.AccountRepo) *AccountService {
	return &AccountService{
		identities: identities,
		accounts:   accounts,
	}
}

type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// Signup creates the identity record and mirrors a profile document under the
// provider-issued id.
func (as *AccountService) Signup(ctx context.Context, req SignupRequest) (*models.IdentityRecord, error) {
	if !helpers.IsPasswordStrong(req.Password) {
		return nil, apperr.New(apperr.InvalidRequest, "password is not strong enough")
	}

	displayName := strings.TrimSpace(req.FirstName + " " + req.LastName)
	record, err := as.identities.CreateIdentity(ctx, models.CreateIdentityParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, err
	}

	fields := bson.M{
		"email":       req.Email,
		"displayName": displayName,
		"status":      models.StatusActive,
	}
	if err := as.accounts.MergeAccount(ctx, record.UID, fields); err != nil {
		return nil, err
	}

	return record, nil
}

func (as *AccountService) Login(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, apperr.New(apperr.InvalidRequest, "invalid email format")
	}
	if password == "" {
		return nil, apperr.New(apperr.InvalidRequest, "password is required")
	}
	return as.identities.SignIn(ctx, email, password)
}

type ProfileRequest struct {
	PhotoURL    string `json:"photoURL"`
	Budget      string `json:"budget"`
	Location    string `json:"location"`
	HousingType string `json:"housingType"`
	Description string `json:"description"`
}

// UpdateProfile merge-upserts the given fields onto the account document.
func (as *AccountService) UpdateProfile(ctx context.Context, uid string, req ProfileRequest) error {
	fields := bson.M{
		"photoURL":    req.PhotoURL,
		"location":    req.Location,
		"housingType": req.HousingType,
		"description": req.Description,
		"updatedAt":   time.Now(),
	}
	if req.Budget != "" {
		budget, err := strconv.ParseFloat(req.Budget, 64)
		if err != nil {
			return apperr.Newf(apperr.InvalidRequest, "invalid budget value: %q", req.Budget)
		}
		fields["budget"] = budget
	}

	return as.accounts.MergeAccount(ctx, uid, fields)
}

func (as *AccountService) GetProfile(ctx context.Context, uid string) (*models.Account, error) {
	return as.accounts.GetAccount(ctx, uid)
}

// CheckStatus returns the account's status string, defaulting to active when
// no profile document exists yet. A blocked status is returned as a Forbidden
// error carrying the account-blocked code.
func (as *AccountService) CheckStatus(ctx context.Context, uid string) (models.AccountStatus, error) {
	acct, err := as.accounts.GetAccount(ctx, uid)
	if apperr.IsKind(err, apperr.NotFound) {
		return models.StatusActive, nil
	}
	if err != nil {
		return "", err
	}

	if acct.Status == models.StatusBlocked {
		return "", apperr.WithCode(apperr.Forbidden, "account-blocked", "Account blocked")
	}
	if acct.Status == "" {
		return models.StatusActive, nil
	}
	return acct.Status, nil
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateAdmin creates a confirmed identity with the admin claim and a profile
// document granting admin rights.
func (as *AccountService) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*models.IdentityRecord, error) {
	record, err := as.identities.CreateIdentity(ctx, models.CreateIdentityParams{
		Email:         req.Email,
		Password:      req.Password,
		EmailVerified: true,
		AdminClaim:    true,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	acct := &models.Account{
		UID:        record.UID,
		Email:      req.Email,
		IsAdmin:    true,
		IsVerified: true,
		Status:     models.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := as.accounts.SetAccount(ctx, acct); err != nil {
		return nil, err
	}

	return record, nil
}
