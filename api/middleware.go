package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserKey  = "user"
	ctxTokenKey = "accessToken"
)

// AuthMiddleware resolves the bearer token to a user record and attaches it
// to the context. The check order matches the error taxonomy: signature and
// expiry first, then user lookup, then the blacklist.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
			return
		}
		accessToken := strings.TrimPrefix(header, "Bearer ")

		claims, err := h.tokens.Parse(accessToken)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
			return
		}

		user, err := h.storage.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No user found"})
			return
		}

		blacklisted, err := h.storage.IsTokenBlacklisted(accessToken, h.tokens.AccessTTL())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if blacklisted {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token blacklisted"})
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxTokenKey, accessToken)
		c.Next()
	}
}
