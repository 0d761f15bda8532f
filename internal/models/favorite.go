package models

import (
	"time"
)

// Favorite marks a listing as bookmarked by a user. The document's existence
// is the favorite flag; favorites are created and deleted, never updated.
type Favorite struct {
	Key       string    `bson:"_id" json:"-"`
	UserID    string    `bson:"userId" json:"userId"`
	ListingID string    `bson:"listingId" json:"listingId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// FavoriteKey builds the composite document key for a (user, listing) pair.
func FavoriteKey(uid, listingID string) string {
	return uid + "_" + listingID
}
