package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/colocapp/coloc-api/internal/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ListingRepo interface {
	InsertListing(ctx context.Context, listing *Listing) (string, error)
	GetListingByID(ctx context.Context, id string) (*Listing, error)
	ListListings(ctx context.Context) ([]*Listing, error)
	ReplaceListing(ctx context.Context, id string, listing *Listing) error
	DeleteListing(ctx context.Context, id string) error
}

func listingNotFound() error {
	return apperr.New(apperr.NotFound, "Listing not found")
}

func (mdb *MongodbRepo) InsertListing(ctx context.Context, listing *Listing) (string, error) {
	col := mdb.GetCollection(ctx, ListingsCollection)

	if listing.ID == "" {
		listing.ID = primitive.NewObjectID().Hex()
	}
	if _, err := col.InsertOne(ctx, listing); err != nil {
		return "", fmt.Errorf("failed to insert listing: %v", err)
	}
	return listing.ID, nil
}

func (mdb *MongodbRepo) GetListingByID(ctx context.Context, id string) (*Listing, error) {
	col := mdb.GetCollection(ctx, ListingsCollection)

	var listing Listing
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, listingNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %v", id, err)
	}
	return &listing, nil
}

func (mdb *MongodbRepo) ListListings(ctx context.Context) ([]*Listing, error) {
	col := mdb.GetCollection(ctx, ListingsCollection)

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding listings: %v", err)
	}
	defer cursor.Close(ctx)

	listings := make([]*Listing, 0)
	for cursor.Next(ctx) {
		var listing Listing
		if err := cursor.Decode(&listing); err != nil {
			return nil, fmt.Errorf("error decoding listing: %v", err)
		}
		listings = append(listings, &listing)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return listings, nil
}

func (mdb *MongodbRepo) ReplaceListing(ctx context.Context, id string, listing *Listing) error {
	col := mdb.GetCollection(ctx, ListingsCollection)

	listing.ID = id
	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, listing)
	if err != nil {
		return fmt.Errorf("failed to replace listing %s: %v", id, err)
	}
	if res.MatchedCount == 0 {
		return listingNotFound()
	}
	return nil
}

func (mdb *MongodbRepo) DeleteListing(ctx context.Context, id string) error {
	col := mdb.GetCollection(ctx, ListingsCollection)

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing %s: %v", id, err)
	}
	if res.DeletedCount == 0 {
		// The listing vanished between the ownership check and the delete.
		return listingNotFound()
	}
	return nil
}
