package handlers

import (
	"net/http"

	"github.com/colocapp/coloc-api/internal/models"
	"github.com/colocapp/coloc-api/internal/services"
	"github.com/gin-gonic/gin"
)

type listingRequest struct {
	FormData models.ListingForm `json:"formData" binding:"required"`
}

func CreateListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		var req listingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		listing, err := l.Create(c.Request.Context(), p.UID, &req.FormData)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":   true,
			"message":   "Listing created successfully",
			"listingId": listing.ID,
		})
	}
}

func ListListings(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := l.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"listings": listings,
		})
	}
}

func GetListingByID(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, err := l.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"listing": listing,
		})
	}
}

func UpdateListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		var req listingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		if _, err := l.Update(c.Request.Context(), c.Param("id"), p.UID, &req.FormData); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Listing updated successfully",
		})
	}
}

func DeleteListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		if err := l.Delete(c.Request.Context(), c.Param("id"), p.UID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Listing deleted successfully",
		})
	}
}
