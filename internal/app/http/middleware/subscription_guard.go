package middleware

import (
	"net/http"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/access"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// LoadUser fetches the authenticated user and stores it with its effective
// tier under "user" and "tier".
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		var user users.User
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set("user", user)
		c.Set("tier", access.EffectiveTier(time.Now(), user))
		c.Next()
	}
}

// RequirePaidTier rejects users whose effective tier is free. Must run after
// LoadUser.
func RequirePaidTier() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pricing.IsPaidTier(c.GetString("tier")) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "This feature requires a paid plan",
			})
			return
		}
		c.Next()
	}
}
