package handlers

import (
	"net/http"

	"github.com/colocapp/coloc-api/internal/services"
	"github.com/gin-gonic/gin"
)

// Signup creates an identity and its mirrored profile document. The response
// is the identity record; errors are plain strings on this legacy endpoint.
func Signup(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		record, err := a.Signup(c.Request.Context(), req)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		c.JSON(http.StatusCreated, record)
	}
}

func Login(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		tokenRes, err := a.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "message": "invalid email or password"})
			return
		}

		c.JSON(http.StatusOK, tokenRes)
	}
}

func LoggedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, "Hello "+p.UID)
	}
}

func CheckStatus(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		status, err := a.CheckStatus(c.Request.Context(), p.UID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": status})
	}
}

func CreateAdmin(a *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		record, err := a.CreateAdmin(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Admin account created successfully",
			"uid":     record.UID,
		})
	}
}
