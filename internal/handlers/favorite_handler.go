package handlers

import (
	"net/http"

	"github.com/colocapp/coloc-api/internal/services"
	"github.com/gin-gonic/gin"
)

func ToggleFavorite(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		var req struct {
			ListingID string `json:"listingId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		isFavorite, err := f.Toggle(c.Request.Context(), p.UID, req.ListingID)
		if err != nil {
			respondError(c, err)
			return
		}

		message := "Removed from favorites"
		if isFavorite {
			message = "Added to favorites"
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"isFavorite": isFavorite,
			"message":    message,
		})
	}
}

func CheckFavoriteStatus(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		isFavorite, err := f.CheckStatus(c.Request.Context(), p.UID, c.Param("listingId"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"isFavorite": isFavorite,
		})
	}
}

func GetUserFavorites(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		favorites, err := f.ListForUser(c.Request.Context(), p.UID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"favorites": favorites,
		})
	}
}
