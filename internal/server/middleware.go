package server

import (
	"errors"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// TokenAuthenticator resolves an access token to a user id
type TokenAuthenticator interface {
	Authenticate(token string) (uint, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// TokenAuthMiddleware gates protected routes behind the access-token header.
// Expired token rows are swept and the token resolved to a user id, which is
// injected into the request context for downstream handlers.
func TokenAuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("access-token")
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrInvalidToken, "invalid token")
			utils.Warn("TokenAuthMiddleware: missing access-token header", map[string]any{
				"path": c.Request.URL.Path,
			})
			c.Abort()
			return
		}

		userID, err := auth.Authenticate(token)
		if err != nil {
			// Unknown or expired token is an auth failure; anything else is a
			// database fault and must not masquerade as one.
			if errors.Is(err, auctionerrors.ErrInvalidToken) {
				utils.JSONError(c, http.StatusUnauthorized, err, "invalid token")
			} else {
				utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
			}
			utils.Warn("TokenAuthMiddleware: token verification failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(helpers.UserIDKey, userID)
		c.Next()
	}
}
