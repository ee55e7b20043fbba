package middleware

import (
	"context"
	"net/http"
	"strings"

	staffRepo "clinicsched/database/repository/staff"
	"clinicsched/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStaffMiddleware authenticates staff requests. The bearer token must
// validate, reference an existing staff member, and not appear on the
// revocation list in the auth cache.
func JWTAuthStaffMiddleware(repo staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx := context.Background()

		// Revoked tokens are stored by hash in the auth cache.
		revokedKey := utils.AuthCachePrefix + "revoked:" + utils.HashToken(tokenString)
		if exists, err := utils.GetAuthCacheClient().Exists(ctx, revokedKey).Result(); err == nil && exists > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		staff, err := repo.GetByID(ctx, staffID)
		if err != nil || staff == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("staffID", staff.ID)
		c.Next()
	}
}
