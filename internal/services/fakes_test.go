package services

import (
	"context"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/models"
	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeIdentityRepo struct {
	records map[string]*models.IdentityRecord

	created       []models.CreateIdentityParams
	disabledCalls map[string]bool
	revoked       []string
	deleted       []string

	nextUID   string
	createErr error
	deleteErr error
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{
		records:       make(map[string]*models.IdentityRecord),
		disabledCalls: make(map[string]bool),
	}
}

func (f *fakeIdentityRepo) CreateIdentity(ctx context.Context, params models.CreateIdentityParams) (*models.IdentityRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, params)

	uid := f.nextUID
	if uid == "" {
		uid = uuid.NewString()
	}
	rec := &models.IdentityRecord{
		UID:           uid,
		Email:         params.Email,
		DisplayName:   params.DisplayName,
		EmailVerified: params.EmailVerified,
		IsAdmin:       params.AdminClaim,
		Provider:      "password",
	}
	f.records[uid] = rec
	return rec, nil
}

func (f *fakeIdentityRepo) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	return &types.TokenResponse{}, nil
}

func (f *fakeIdentityRepo) GetIdentity(ctx context.Context, uid string) (*models.IdentityRecord, error) {
	rec, ok := f.records[uid]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "identity not found")
	}
	return rec, nil
}

func (f *fakeIdentityRepo) ListIdentities(ctx context.Context) ([]*models.IdentityRecord, error) {
	records := make([]*models.IdentityRecord, 0, len(f.records))
	for _, rec := range f.records {
		records = append(records, rec)
	}
	return records, nil
}

func (f *fakeIdentityRepo) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	if rec, ok := f.records[uid]; ok {
		rec.IsAdmin = admin
	}
	return nil
}

func (f *fakeIdentityRepo) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	f.disabledCalls[uid] = disabled
	if rec, ok := f.records[uid]; ok {
		rec.Disabled = disabled
	}
	return nil
}

func (f *fakeIdentityRepo) RevokeSessions(ctx context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return nil
}

func (f *fakeIdentityRepo) DeleteIdentity(ctx context.Context, uid string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, uid)
	delete(f.records, uid)
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*models.Account
	merged   map[string]bson.M
	inserted []string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*models.Account),
		merged:   make(map[string]bson.M),
	}
}

func (f *fakeAccountRepo) GetAccount(ctx context.Context, uid string) (*models.Account, error) {
	acct, ok := f.accounts[uid]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "User profile not found")
	}
	return acct, nil
}

func (f *fakeAccountRepo) MergeAccount(ctx context.Context, uid string, fields bson.M) error {
	merged, ok := f.merged[uid]
	if !ok {
		merged = bson.M{}
		f.merged[uid] = merged
	}
	for k, v := range fields {
		merged[k] = v
	}

	acct, ok := f.accounts[uid]
	if !ok {
		acct = &models.Account{UID: uid}
		f.accounts[uid] = acct
	}
	if status, ok := fields["status"].(models.AccountStatus); ok {
		acct.Status = status
	}
	if verified, ok := fields["isVerified"].(bool); ok {
		acct.IsVerified = verified
	}
	return nil
}

func (f *fakeAccountRepo) SetAccount(ctx context.Context, acct *models.Account) error {
	f.accounts[acct.UID] = acct
	return nil
}

func (f *fakeAccountRepo) InsertAccountIfMissing(ctx context.Context, acct *models.Account) (bool, error) {
	if _, ok := f.accounts[acct.UID]; ok {
		return false, nil
	}
	f.accounts[acct.UID] = acct
	f.inserted = append(f.inserted, acct.UID)
	return true, nil
}

func (f *fakeAccountRepo) ListAccounts(ctx context.Context) (map[string]*models.Account, error) {
	out := make(map[string]*models.Account, len(f.accounts))
	for uid, acct := range f.accounts {
		out[uid] = acct
	}
	return out, nil
}

type fakeListingRepo struct {
	listings map[string]*models.Listing
	nextID   string
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*models.Listing)}
}

func (f *fakeListingRepo) InsertListing(ctx context.Context, listing *models.Listing) (string, error) {
	id := f.nextID
	if id == "" {
		id = uuid.NewString()
	}
	listing.ID = id
	f.listings[id] = listing
	return id, nil
}

func (f *fakeListingRepo) GetListingByID(ctx context.Context, id string) (*models.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Listing not found")
	}
	return listing, nil
}

func (f *fakeListingRepo) ListListings(ctx context.Context) ([]*models.Listing, error) {
	out := make([]*models.Listing, 0, len(f.listings))
	for _, listing := range f.listings {
		out = append(out, listing)
	}
	return out, nil
}

func (f *fakeListingRepo) ReplaceListing(ctx context.Context, id string, listing *models.Listing) error {
	if _, ok := f.listings[id]; !ok {
		return apperr.New(apperr.NotFound, "Listing not found")
	}
	listing.ID = id
	f.listings[id] = listing
	return nil
}

func (f *fakeListingRepo) DeleteListing(ctx context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return apperr.New(apperr.NotFound, "Listing not found")
	}
	delete(f.listings, id)
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[string]*models.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*models.Favorite)}
}

func (f *fakeFavoriteRepo) FavoriteExists(ctx context.Context, key string) (bool, error) {
	_, ok := f.favorites[key]
	return ok, nil
}

func (f *fakeFavoriteRepo) InsertFavorite(ctx context.Context, fav *models.Favorite) error {
	f.favorites[fav.Key] = fav
	return nil
}

func (f *fakeFavoriteRepo) DeleteFavorite(ctx context.Context, key string) error {
	delete(f.favorites, key)
	return nil
}

func (f *fakeFavoriteRepo) ListFavoritesByUser(ctx context.Context, uid string) ([]*models.Favorite, error) {
	out := make([]*models.Favorite, 0)
	for _, fav := range f.favorites {
		if fav.UserID == uid {
			out = append(out, fav)
		}
	}
	return out, nil
}
