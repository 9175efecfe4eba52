package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lightfield/utils"

	"github.com/gin-gonic/gin"
)

const blacklistPrefix = "tokenBlacklist:"

// JWTAuthAdminMiddleware guards admin routes. It requires a Bearer token
// signed by this server and rejects tokens that have been blacklisted on logout.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Tokens revoked via logout are held in the auth cache until expiry.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		exists, err := utils.GetAuthCacheClient().Exists(ctx, blacklistPrefix+utils.HashToken(tokenString)).Result()
		if err == nil && exists > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("adminID", adminID)
		c.Set("isAdmin", true)
		c.Next()
	}
}

// BlacklistToken records a revoked token hash in the auth cache for the given TTL.
func BlacklistToken(ctx context.Context, tokenString string, ttl time.Duration) error {
	return utils.GetAuthCacheClient().Set(ctx, blacklistPrefix+utils.HashToken(tokenString), "revoked", ttl).Err()
}
