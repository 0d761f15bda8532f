package services

import (
	"context"
	"strings"
	"time"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/models"
)

type FavoriteService struct {
	favorites models.FavoriteRepo
	listings  models.ListingRepo
}

func NewFavoriteService(favorites models.FavoriteRepo, listings models.ListingRepo) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		listings:  listings,
	}
}

// Toggle flips the favorite marker for a (user, listing) pair and reports the
// resulting state.
func (fs *FavoriteService) Toggle(ctx context.Context, uid, listingID string) (bool, error) {
	if strings.TrimSpace(listingID) == "" {
		return false, apperr.New(apperr.InvalidRequest, "listing ID cannot be empty")
	}

	key := models.FavoriteKey(uid, listingID)
	exists, err := fs.favorites.FavoriteExists(ctx, key)
	if err != nil {
		return false, err
	}

	if exists {
		if err := fs.favorites.DeleteFavorite(ctx, key); err != nil {
			return false, err
		}
		return false, nil
	}

	fav := &models.Favorite{
		Key:       key,
		UserID:    uid,
		ListingID: listingID,
		CreatedAt: time.Now(),
	}
	if err := fs.favorites.InsertFavorite(ctx, fav); err != nil {
		return false, err
	}
	return true, nil
}

func (fs *FavoriteService) CheckStatus(ctx context.Context, uid, listingID string) (bool, error) {
	if strings.TrimSpace(listingID) == "" {
		return false, apperr.New(apperr.InvalidRequest, "listing ID cannot be empty")
	}
	return fs.favorites.FavoriteExists(ctx, models.FavoriteKey(uid, listingID))
}

// ListForUser resolves the user's favorites to their listings. Favorites whose
// listing no longer exists are dropped silently.
func (fs *FavoriteService) ListForUser(ctx context.Context, uid string) ([]*models.Listing, error) {
	favs, err := fs.favorites.ListFavoritesByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	listings := make([]*models.Listing, 0, len(favs))
	for _, fav := range favs {
		listing, err := fs.listings.GetListingByID(ctx, fav.ListingID)
		if apperr.IsKind(err, apperr.NotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
