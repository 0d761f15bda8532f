package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/colocapp/coloc-api/internal/apperr"
	"github.com/colocapp/coloc-api/internal/helpers"
	"github.com/colocapp/coloc-api/internal/models"
	"github.com/colocapp/coloc-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "user"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// AuthGate decides whether the caller is a valid, non-blocked principal and
// attaches the verified identity to the request context.
//
// The checks run in order: bearer header present, token verified against the
// provider's JWKS, the provider's live record not disabled, the account
// document not blocked. A blocked account additionally gets its sessions
// revoked, closing tokens issued before the block. Both block sources produce
// the same response so callers cannot tell them apart.
func AuthGate(verifier helpers.TokenVerifier, identities models.IdentityRepo, accounts models.AccountRepo, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("No token provided"))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Invalid token format"))
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			logger.Info("Token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Invalid token"))
			return
		}
		uid := claims.Subject
		ctx := c.Request.Context()

		identity, err := identities.GetIdentity(ctx, uid)
		if err != nil {
			// The token already proved the identity existed; degrade to the
			// document check rather than failing closed on a provider outage.
			logger.Warn("Identity lookup failed", "user_id", uid, "error", err)
		} else if identity.Disabled {
			abortBlocked(c)
			return
		}

		acct, err := accounts.GetAccount(ctx, uid)
		if err != nil && !apperr.IsKind(err, apperr.NotFound) {
			logger.Warn("Account lookup failed", "user_id", uid, "error", err)
		}
		if acct != nil && acct.Status == models.StatusBlocked {
			if err := identities.RevokeSessions(ctx, uid); err != nil {
				logger.Error("Session revocation failed", "user_id", uid, "error", err)
			}
			abortBlocked(c)
			return
		}

		c.Set(principalKey, &helpers.Principal{
			UID:    uid,
			Email:  claims.Email,
			Claims: claims,
		})
		c.Next()
	}
}

func abortBlocked(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, models.ApiResponse{
		Success: false,
		Error:   "Account blocked",
		Code:    "account-blocked",
	})
}

// RequireAdmin allows only callers whose account document carries the admin
// flag. Must run after AuthGate.
func RequireAdmin(admin *services.AdminService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized"))
			return
		}

		isAdmin, err := admin.CheckAdmin(c.Request.Context(), principal.UID)
		if err != nil {
			logger.Error("Admin check failed", "user_id", principal.UID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// CurrentPrincipal returns the principal attached by AuthGate.
func CurrentPrincipal(c *gin.Context) (*helpers.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*helpers.Principal)
	if !ok {
		return nil, false
	}
	return principal, true
}
