package routes

import (
	"fmt"
	"net/http"

	"github.com/colocapp/coloc-api/internal/config"
	"github.com/colocapp/coloc-api/internal/container"
	"github.com/colocapp/coloc-api/internal/handlers"
	"github.com/colocapp/coloc-api/internal/middleware"
	"github.com/colocapp/coloc-api/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     c.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(gin.Recovery())

	authGate := middleware.AuthGate(c.Verifier, c.Identities, c.Accounts, c.Logger)
	adminOnly := middleware.RequireAdmin(c.AdminService, c.Logger)

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Colocation API is running")
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", handlers.Signup(c.AccountService))
		auth.POST("/login", handlers.Login(c.AccountService))
		auth.GET("/logged-in", authGate, handlers.LoggedIn())
		auth.GET("/check-status", authGate, handlers.CheckStatus(c.AccountService))
	}

	admin := api.Group("/admin")
	admin.Use(authGate)
	{
		// Not admin-gated: parity with the original bootstrap route. Must be
		// protected at the deployment layer.
		admin.POST("/create", handlers.CreateAdmin(c.AccountService))
		admin.GET("/check", handlers.CheckAdmin(c.AdminService))

		users := admin.Group("/users")
		users.Use(adminOnly)
		{
			users.GET("", handlers.ListAllUsers(c.AdminService))
			users.DELETE("/:userId/auth", handlers.DeleteUserAuth(c.AdminService))
			users.POST("/:userId/toggle-block", handlers.ToggleBlockUser(c.AdminService))
			users.POST("/:userId/verify", handlers.VerifyUser(c.AdminService))
		}
	}

	listings := api.Group("/listings")
	{
		listings.GET("", handlers.ListListings(c.ListingService))
		listings.GET("/:id", handlers.GetListingByID(c.ListingService))
		listings.POST("", authGate, handlers.CreateListing(c.ListingService))
		listings.PUT("/:id", authGate, handlers.UpdateListing(c.ListingService))
		listings.DELETE("/:id", authGate, handlers.DeleteListing(c.ListingService))
	}

	favorites := api.Group("/favorites")
	favorites.Use(authGate)
	{
		favorites.POST("/toggle", handlers.ToggleFavorite(c.FavoriteService))
		favorites.GET("/check/:listingId", handlers.CheckFavoriteStatus(c.FavoriteService))
		favorites.GET("", handlers.GetUserFavorites(c.FavoriteService))
	}

	profile := api.Group("/profile")
	profile.Use(authGate)
	{
		profile.POST("", handlers.UpdateProfile(c.AccountService))
		profile.GET("", handlers.GetProfile(c.AccountService))
	}

	upload := api.Group("/upload")
	upload.Use(authGate)
	{
		upload.POST("/profile", handlers.UploadProfilePhoto(c.UploadService))
	}

	if c.Config.UploadDriver == config.UploadDriverLocal {
		r.Static("/uploads", c.Config.UploadDir)
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse(
			fmt.Sprintf("Cannot %s %s", ctx.Request.Method, ctx.Request.URL.Path),
		))
	})

	return r
}
