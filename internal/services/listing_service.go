package services

import (
	"context"
	"strconv"
	"time"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/models"
)

type ListingService struct {
	listings models.ListingRepo
	accounts models.AccountRepo
}

func NewListingService(listings models.ListingRepo, accounts models.AccountRepo) *ListingService {
	return &ListingService{
		listings: listings,
		accounts: accounts,
	}
}

// Create builds a listing owned by uid. The caller's account document is
// optional; contact fields fall back to its displayName/email/photoURL.
func (ls *ListingService) Create(ctx context.Context, uid string, form *models.ListingForm) (*models.Listing, error) {
	listing, err := listingFromForm(form)
	if err != nil {
		return nil, err
	}

	acct, err := ls.accounts.GetAccount(ctx, uid)
	if err != nil && !apperr.IsKind(err, apperr.NotFound) {
		return nil, err
	}
	if acct == nil {
		acct = &models.Account{}
	}

	if listing.Contact.Name == "" {
		listing.Contact.Name = acct.DisplayName
	}
	if listing.Contact.Email == "" {
		listing.Contact.Email = acct.Email
	}
	listing.Contact.PhotoURL = acct.PhotoURL

	now := time.Now()
	listing.Metadata = models.ListingMetadata{
		UserID:       uid,
		UserName:     acct.DisplayName,
		UserEmail:    acct.Email,
		UserPhotoURL: acct.PhotoURL,
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       models.StatusActive,
	}

	id, err := ls.listings.InsertListing(ctx, listing)
	if err != nil {
		return nil, err
	}
	listing.ID = id
	return listing, nil
}

func (ls *ListingService) List(ctx context.Context) ([]*models.Listing, error) {
	return ls.listings.ListListings(ctx)
}

func (ls *ListingService) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	if id == "" {
		return nil, apperr.New(apperr.InvalidRequest, "listing ID is required")
	}
	return ls.listings.GetListingByID(ctx, id)
}

// Update replaces a listing's fields. Only the owner may update; status,
// owning user and createdAt are preserved, updatedAt is refreshed.
func (ls *ListingService) Update(ctx context.Context, id, uid string, form *models.ListingForm) (*models.Listing, error) {
	existing, err := ls.listings.GetListingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Metadata.UserID != uid {
		return nil, apperr.New(apperr.Forbidden, "Not authorized to update this listing")
	}

	listing, err := listingFromForm(form)
	if err != nil {
		return nil, err
	}

	listing.Metadata = existing.Metadata
	listing.Metadata.UpdatedAt = time.Now()
	if listing.Contact.Name == "" {
		listing.Contact.Name = existing.Contact.Name
	}
	if listing.Contact.Email == "" {
		listing.Contact.Email = existing.Contact.Email
	}
	listing.Contact.PhotoURL = existing.Contact.PhotoURL

	if err := ls.listings.ReplaceListing(ctx, id, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete permanently removes a listing. Permitted for the owner or an admin.
func (ls *ListingService) Delete(ctx context.Context, id, uid string) error {
	existing, err := ls.listings.GetListingByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.Metadata.UserID != uid {
		acct, err := ls.accounts.GetAccount(ctx, uid)
		if err != nil && !apperr.IsKind(err, apperr.NotFound) {
			return err
		}
		if acct == nil || !acct.IsAdmin {
			return apperr.New(apperr.Forbidden, "Not authorized to delete this listing")
		}
	}

	return ls.listings.DeleteListing(ctx, id)
}

func listingFromForm(form *models.ListingForm) (*models.Listing, error) {
	totalRoommates, err := strconv.Atoi(form.TotalRoommates)
	if err != nil {
		return nil, apperr.Newf(apperr.InvalidRequest, "invalid totalRoommates value: %q", form.TotalRoommates)
	}
	bathrooms, err := strconv.Atoi(form.Bathrooms)
	if err != nil {
		return nil, apperr.Newf(apperr.InvalidRequest, "invalid bathrooms value: %q", form.Bathrooms)
	}
	privateArea, err := strconv.ParseFloat(form.PrivateArea, 64)
	if err != nil {
		return nil, apperr.Newf(apperr.InvalidRequest, "invalid privateArea value: %q", form.PrivateArea)
	}
	totalArea, err := strconv.ParseFloat(form.TotalArea, 64)
	if err != nil {
		return nil, apperr.Newf(apperr.InvalidRequest, "invalid totalArea value: %q", form.TotalArea)
	}
	rooms, err := strconv.Atoi(form.Rooms)
	if err != nil {
		return nil, apperr.Newf(apperr.InvalidRequest, "invalid rooms value: %q", form.Rooms)
	}
	rent, err := strconv.ParseFloat(form.Rent, 64)
	if err != nil {
		return nil, apperr.Newf(apperr.InvalidRequest, "invalid rent value: %q", form.Rent)
	}
	var floor *int
	if form.Floor != "" {
		f, err := strconv.Atoi(form.Floor)
		if err != nil {
			return nil, apperr.Newf(apperr.InvalidRequest, "invalid floor value: %q", form.Floor)
		}
		floor = &f
	}

	return &models.Listing{
		Location: models.ListingLocation{
			Street:     form.Street,
			PostalCode: form.PostalCode,
			City:       form.City,
			Country:    form.Country,
		},
		Housing: models.ListingHousing{
			TotalRoommates: totalRoommates,
			Bathrooms:      bathrooms,
			PrivateArea:    privateArea,
		},
		Details: models.ListingDetails{
			PropertyType:  form.PropertyType,
			TotalArea:     totalArea,
			Rooms:         rooms,
			Floor:         floor,
			Furnished:     form.Furnished,
			AvailableDate: form.AvailableDate,
			Rent:          rent,
			Title:         form.Title,
			Description:   form.Description,
		},
		Photos:   form.Photos,
		Services: form.Services,
		Contact: models.ListingContact{
			Name:  form.ContactName,
			Phone: form.ContactPhone,
			Email: form.ContactEmail,
		},
	}, nil
}
