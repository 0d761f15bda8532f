package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/colocapp/coloc-api/internal/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AccountRepo interface {
	GetAccount(ctx context.Context, uid string) (*Account, error)
	// MergeAccount upserts the given fields onto the account document,
	// leaving other fields untouched. createdAt is only set on insert.
	MergeAccount(ctx context.Context, uid string, fields bson.M) error
	// SetAccount overwrites the account document.
	SetAccount(ctx context.Context, acct *Account) error
	// InsertAccountIfMissing persists acct only when no document exists for
	// its UID. Reports whether a new document was created.
	InsertAccountIfMissing(ctx context.Context, acct *Account) (bool, error)
	ListAccounts(ctx context.Context) (map[string]*Account, error)
}

func (mdb *MongodbRepo) GetAccount(ctx context.Context, uid string) (*Account, error) {
	col := mdb.GetCollection(ctx, UsersCollection)

	var acct Account
	err := col.FindOne(ctx, bson.M{"_id": uid}).Decode(&acct)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.New(apperr.NotFound, "User profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %v", uid, err)
	}
	return &acct, nil
}

func (mdb *MongodbRepo) MergeAccount(ctx context.Context, uid string, fields bson.M) error {
	col := mdb.GetCollection(ctx, UsersCollection)

	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(ctx, bson.M{"_id": uid}, update, opts); err != nil {
		return fmt.Errorf("failed to merge account %s: %v", uid, err)
	}
	return nil
}

func (mdb *MongodbRepo) SetAccount(ctx context.Context, acct *Account) error {
	col := mdb.GetCollection(ctx, UsersCollection)

	opts := options.Replace().SetUpsert(true)
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": acct.UID}, acct, opts); err != nil {
		return fmt.Errorf("failed to set account %s: %v", acct.UID, err)
	}
	return nil
}

func (mdb *MongodbRepo) InsertAccountIfMissing(ctx context.Context, acct *Account) (bool, error) {
	col := mdb.GetCollection(ctx, UsersCollection)

	_, err := col.InsertOne(ctx, acct)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert account %s: %v", acct.UID, err)
	}
	return true, nil
}

func (mdb *MongodbRepo) ListAccounts(ctx context.Context) (map[string]*Account, error) {
	col := mdb.GetCollection(ctx, UsersCollection)

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding accounts: %v", err)
	}
	defer cursor.Close(ctx)

	accounts := make(map[string]*Account)
	for cursor.Next(ctx) {
		var acct Account
		if err := cursor.Decode(&acct); err != nil {
			return nil, fmt.Errorf("error decoding account: %v", err)
		}
		accounts[acct.UID] = &acct
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return accounts, nil
}
