package services

import (
	"context"
	"testing"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/models"
)

func validListingForm() *models.ListingForm {
	return &models.ListingForm{
		Street:         "12 rue des Lilas",
		PostalCode:     "69003",
		City:           "Lyon",
		Country:        "France",
		TotalRoommates: "3",
		Bathrooms:      "2",
		PrivateArea:    "14.5",
		PropertyType:   "apartment",
		TotalArea:      "92",
		Rooms:          "4",
		Floor:          "2",
		Rent:           "650",
		Title:          "Bright room near Part-Dieu",
	}
}

func TestCreateListingFillsContactFromAccount(t *testing.T) {
	listings := newFakeListingRepo()
	listings.nextID = "listing-1"
	accounts := newFakeAccountRepo()
	accounts.accounts["uid-1"] = &models.Account{
		UID:         "uid-1",
		Email:       "jane@example.com",
		DisplayName: "Jane Doe",
		PhotoURL:    "https://cdn.example.com/jane.png",
	}
	svc := NewListingService(listings, accounts)

	listing, err := svc.Create(context.Background(), "uid-1", validListingForm())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if listing.ID != "listing-1" {
		t.Errorf("ID = %q, want listing-1", listing.ID)
	}
	if listing.Contact.Name != "Jane Doe" || listing.Contact.Email != "jane@example.com" {
		t.Errorf("contact = %+v, want account fallbacks", listing.Contact)
	}
	if listing.Metadata.UserID != "uid-1" {
		t.Errorf("metadata.UserID = %q, want uid-1", listing.Metadata.UserID)
	}
	if listing.Metadata.Status != models.StatusActive {
		t.Errorf("metadata.Status = %q, want active", listing.Metadata.Status)
	}
	if listing.Housing.TotalRoommates != 3 || listing.Details.Rent != 650 {
		t.Errorf("parsed numerics wrong: %+v %+v", listing.Housing, listing.Details)
	}
	if listing.Details.Floor == nil || *listing.Details.Floor != 2 {
		t.Errorf("floor = %v, want 2", listing.Details.Floor)
	}
}

func TestCreateListingWithoutProfileDocument(t *testing.T) {
	listings := newFakeListingRepo()
	svc := NewListingService(listings, newFakeAccountRepo())

	listing, err := svc.Create(context.Background(), "uid-1", validListingForm())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if listing.Metadata.UserID != "uid-1" {
		t.Errorf("metadata.UserID = %q, want uid-1", listing.Metadata.UserID)
	}
}

func TestCreateListingRejectsBadNumeric(t *testing.T) {
	svc := NewListingService(newFakeListingRepo(), newFakeAccountRepo())

	form := validListingForm()
	form.Rent = "six hundred"
	_, err := svc.Create(context.Background(), "uid-1", form)
	if !apperr.IsKind(err, apperr.InvalidRequest) {
		t.Fatalf("err = %v, want InvalidRequest", err)
	}
}

func TestUpdateListingOwnerOnly(t *testing.T) {
	listings := newFakeListingRepo()
	listings.listings["listing-1"] = &models.Listing{
		ID:       "listing-1",
		Metadata: models.ListingMetadata{UserID: "owner"},
	}
	svc := NewListingService(listings, newFakeAccountRepo())

	_, err := svc.Update(context.Background(), "listing-1", "intruder", validListingForm())
	if !apperr.IsKind(err, apperr.Forbidden) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
}

func TestUpdateListingPreservesMetadata(t *testing.T) {
	listings := newFakeListingRepo()
	existing := &models.Listing{
		ID: "listing-1",
		Contact: models.ListingContact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			PhotoURL: "https://cdn.example.com/jane.png",
		},
		Metadata: models.ListingMetadata{
			UserID:    "owner",
			UserEmail: "jane@example.com",
			Status:    models.StatusActive,
		},
	}
	listings.listings["listing-1"] = existing
	svc := NewListingService(listings, newFakeAccountRepo())

	updated, err := svc.Update(context.Background(), "listing-1", "owner", validListingForm())
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Metadata.UserID != "owner" || updated.Metadata.Status != models.StatusActive {
		t.Errorf("metadata = %+v, want owner and status preserved", updated.Metadata)
	}
	if updated.Contact.Name != "Jane Doe" || updated.Contact.Email != "jane@example.com" {
		t.Errorf("contact = %+v, want previous contact preserved", updated.Contact)
	}
}

func TestDeleteListingOwnerOrAdmin(t *testing.T) {
	ctx := context.Background()

	newSvc := func(acct *models.Account) (*ListingService, *fakeListingRepo) {
		listings := newFakeListingRepo()
		listings.listings["listing-1"] = &models.Listing{
			ID:       "listing-1",
			Metadata: models.ListingMetadata{UserID: "owner"},
		}
		accounts := newFakeAccountRepo()
		if acct != nil {
			accounts.accounts[acct.UID] = acct
		}
		return NewListingService(listings, accounts), listings
	}

	svc, listings := newSvc(nil)
	if err := svc.Delete(ctx, "listing-1", "owner"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(listings.listings) != 0 {
		t.Fatal("owner delete should remove the listing")
	}

	svc, listings = newSvc(&models.Account{UID: "admin", IsAdmin: true})
	if err := svc.Delete(ctx, "listing-1", "admin"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(listings.listings) != 0 {
		t.Fatal("admin delete should remove the listing")
	}

	svc, listings = newSvc(&models.Account{UID: "bystander"})
	err := svc.Delete(ctx, "listing-1", "bystander")
	if !apperr.IsKind(err, apperr.Forbidden) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
	if len(listings.listings) != 1 {
		t.Fatal("forbidden delete must not remove the listing")
	}
}

func TestGetListingByIDNotFound(t *testing.T) {
	svc := NewListingService(newFakeListingRepo(), newFakeAccountRepo())

	_, err := svc.GetByID(context.Background(), "does-not-exist")
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}
