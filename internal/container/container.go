package container

import (
	"fmt"
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/colocapp/coloc-api/internal/config"
	"github.com/colocapp/coloc-api/internal/helpers"
	"github.com/colocapp/coloc-api/internal/models"
	"github.com/colocapp/coloc-api/internal/services"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Verifier helpers.TokenVerifier

	// Repositories, exposed for the auth gate
	Identities models.IdentityRepo
	Accounts   models.AccountRepo

	AccountService  *services.AccountService
	ListingService  *services.ListingService
	FavoriteService *services.FavoriteService
	AdminService    *services.AdminService
	UploadService   *services.UploadService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	verifier helpers.TokenVerifier,
	anonClient *supabase.Client,
	adminClient gotrue.Client,
	mongoClient *mongo.Client,
	cld *cloudinary.Cloudinary,
) (*Container, error) {
	identities := models.GoTrueNewRepo(anonClient, adminClient)
	store := models.MongodbNewRepo(mongoClient, cfg.MongoDBName)

	storage, err := newPhotoStorage(cfg, cld)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:          cfg,
		Logger:          logger,
		Verifier:        verifier,
		Identities:      identities,
		Accounts:        store,
		AccountService:  services.NewAccountService(identities, store),
		ListingService:  services.NewListingService(store, store),
		FavoriteService: services.NewFavoriteService(store, store),
		AdminService:    services.NewAdminService(identities, store),
		UploadService:   services.NewUploadService(storage),
	}, nil
}

func newPhotoStorage(cfg *config.Config, cld *cloudinary.Cloudinary) (services.PhotoStorage, error) {
	switch cfg.UploadDriver {
	case config.UploadDriverCloudinary:
		if cld == nil {
			return nil, fmt.Errorf("cloudinary upload driver requires Cloudinary credentials")
		}
		return services.NewCloudinaryStorage(cld), nil
	default:
		return services.NewLocalStorage(cfg.UploadDir)
	}
}
