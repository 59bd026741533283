package users

import (
	"net/http"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/access"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /me (auth, after LoadUser)
func GetCurrentUser(c *gin.Context) {
	v, ok := c.Get("user")
	user, isUser := v.(users.User)
	if !ok || !isUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now()
	state := access.ComputeAccessState(now, user)
	tier := access.EffectiveTier(now, user)

	used, err := proposals.CountActiveThisMonth(database.DB, user.ID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute usage"})
		return
	}

	resp := MeResponse{
		User: UserDTO{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Tier),
			Subscription: BuildSubscriptionDTO(user),
			Trial:        BuildTrialDTO(now, user.TrialEndAt),
		},
		Access: AccessDTO{
			State: string(state),
			Tier:  tier,
		},
		Usage: BuildUsageDTO(now, tier, used),
	}

	c.JSON(http.StatusOK, resp)
}
