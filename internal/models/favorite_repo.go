package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteRepo interface {
	// FavoriteExists reports whether the (user, listing) pair is favorited.
	FavoriteExists(ctx context.Context, key string) (bool, error)
	InsertFavorite(ctx context.Context, fav *Favorite) error
	DeleteFavorite(ctx context.Context, key string) error
	ListFavoritesByUser(ctx context.Context, uid string) ([]*Favorite, error)
}

func (mdb *MongodbRepo) FavoriteExists(ctx context.Context, key string) (bool, error) {
	col := mdb.GetCollection(ctx, FavoritesCollection)

	err := col.FindOne(ctx, bson.M{"_id": key}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite %s: %v", key, err)
	}
	return true, nil
}

func (mdb *MongodbRepo) InsertFavorite(ctx context.Context, fav *Favorite) error {
	col := mdb.GetCollection(ctx, FavoritesCollection)

	if _, err := col.InsertOne(ctx, fav); err != nil {
		// A concurrent toggle may have inserted the same key first; the pair
		// is favorited either way.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to insert favorite %s: %v", fav.Key, err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteFavorite(ctx context.Context, key string) error {
	col := mdb.GetCollection(ctx, FavoritesCollection)

	if _, err := col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete favorite %s: %v", key, err)
	}
	return nil
}

func (mdb *MongodbRepo) ListFavoritesByUser(ctx context.Context, uid string) ([]*Favorite, error) {
	col := mdb.GetCollection(ctx, FavoritesCollection)

	cursor, err := col.Find(ctx, bson.M{"userId": uid})
	if err != nil {
		return nil, fmt.Errorf("error finding favorites: %v", err)
	}
	defer cursor.Close(ctx)

	favorites := make([]*Favorite, 0)
	for cursor.Next(ctx) {
		var fav Favorite
		if err := cursor.Decode(&fav); err != nil {
			return nil, fmt.Errorf("error decoding favorite: %v", err)
		}
		favorites = append(favorites, &fav)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return favorites, nil
}
