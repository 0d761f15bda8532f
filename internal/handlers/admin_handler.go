package handlers

import (
	"net/http"

	"github.com/colocapp/coloc-api/internal/services"
	"github.com/gin-gonic/gin"
)

func CheckAdmin(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		isAdmin, err := a.CheckAdmin(c.Request.Context(), p.UID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
	}
}

func ListAllUsers(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := a.ListAllUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"users":   list.Users,
			"total":   list.Total,
			"stats":   list.Stats,
		})
	}
}

func ToggleBlockUser(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Blocked bool `json:"blocked"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		if err := a.ToggleBlock(c.Request.Context(), c.Param("userId"), req.Blocked); err != nil {
			respondError(c, err)
			return
		}

		message := "User unblocked"
		if req.Blocked {
			message = "User blocked and signed out"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"blocked": req.Blocked,
			"message": message,
		})
	}
}

func VerifyUser(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.VerifyUser(c.Request.Context(), c.Param("userId")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func DeleteUserAuth(a *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeleteAuth(c.Request.Context(), c.Param("userId")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "User account deleted",
		})
	}
}
