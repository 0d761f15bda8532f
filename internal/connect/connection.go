package connect

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/colocapp/coloc-api/internal/config"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	SupabaseClient *supabase.Client
	AdminClient    gotrue.Client
	MongoDBClient  *mongo.Client
	Cld            *cloudinary.Cloudinary
)

// InitSupabase creates the anon-key client used for signup and login.
func InitSupabase(cfg *config.Config) (*supabase.Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, err
	}
	SupabaseClient = client
	return client, nil
}

// InitAdminClient creates the service-role GoTrue client. Admin endpoints
// (user listing, bans, deletion, app metadata) reject the anon key.
func InitAdminClient(cfg *config.Config) (gotrue.Client, error) {
	ref, err := projectRef(cfg.SupabaseURL)
	if err != nil {
		return nil, err
	}
	client := gotrue.New(ref, cfg.SupabaseServiceKey).
		WithCustomGoTrueURL(cfg.SupabaseURL + "/auth/v1").
		WithToken(cfg.SupabaseServiceKey)
	AdminClient = client
	return client, nil
}

// projectRef extracts the project reference from a Supabase URL,
// e.g. https://abcd1234.supabase.co -> abcd1234.
func projectRef(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid Supabase URL: %v", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("invalid Supabase URL: %q", rawURL)
	}
	return strings.Split(host, ".")[0], nil
}

func Disconnect() {
	SupabaseClient = nil
	AdminClient = nil
}

func MongoDBConnect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoDBURI)

	var err error
	MongoDBClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := MongoDBClient.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	return MongoDBClient, nil
}

func MongoDBDisconnect() error {
	if MongoDBClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := MongoDBClient.Disconnect(ctx)
	if err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %v", err)
	}
	MongoDBClient = nil
	return nil
}

// CloudinaryCredentials initializes the Cloudinary client. Only needed when
// UPLOAD_DRIVER=cloudinary.
func CloudinaryCredentials() (*cloudinary.Cloudinary, error) {
	cloudinaryName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	cld, err := cloudinary.NewFromParams(
		cloudinaryName,
		apiKey,
		apiSecret,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}

	Cld = cld
	return cld, nil
}
