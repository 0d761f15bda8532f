package models

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	UsersCollection     = "users"
	ListingsCollection  = "listings"
	FavoritesCollection = "favorites"
)

// GoTrueRepo wraps the identity provider's clients: the anon-key client for
// signup/login and the service-role client for admin operations.
type GoTrueRepo struct {
	anonClient  *supabase.Client
	adminClient gotrue.Client
}

func GoTrueNewRepo(anonClient *supabase.Client, adminClient gotrue.Client) *GoTrueRepo {
	return &GoTrueRepo{
		anonClient:  anonClient,
		adminClient: adminClient,
	}
}

// MongodbRepo wraps the document store client. One instance serves the
// users, listings and favorites collections.
type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, name string) *mongo.Collection {
	return mdb.mongodbClient.Database(mdb.dbName).Collection(name)
}
