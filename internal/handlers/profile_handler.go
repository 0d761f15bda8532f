package handlers

import (
	"net/http"

	"github.com/colocapp/coloc-api/internal/services"
	"github.com/gin-gonic/gin"
)

func UpdateProfile(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		var req struct {
			Profile services.ProfileRequest `json:"profile" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		if err := a.UpdateProfile(c.Request.Context(), p.UID, req.Profile); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Profile updated successfully",
		})
	}
}

func GetProfile(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		profile, err := a.GetProfile(c.Request.Context(), p.UID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"profile": profile,
		})
	}
}
