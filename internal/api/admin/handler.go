package admin

import (
	"net/http"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/access"
	"quotedrop/internal/domain/billing"
	"quotedrop/internal/domain/entity"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminUser struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Tier             string     `json:"tier"`
	EffectiveTier    string     `json:"effective_tier"`
	StripeCustomerID *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID      *string    `json:"stripe_subscription_id,omitempty"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

type AdminStats struct {
	TotalUsers         int            `json:"total_users"`
	TotalProposals     int            `json:"total_proposals"`
	ProposalsThisMonth int            `json:"proposals_this_month"`
	TotalRevenue       string         `json:"total_revenue"`
	RecentRevenue      string         `json:"recent_revenue"`
	UsersPerTier       map[string]int `json:"users_per_tier"`
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("id").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	now := time.Now()
	adminUsers := make([]AdminUser, 0, len(list))
	for _, u := range list {
		adminUsers = append(adminUsers, AdminUser{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			Role:             u.Role,
			Tier:             u.Tier,
			EffectiveTier:    access.EffectiveTier(now, u),
			StripeCustomerID: u.StripeCustomerID,
			StripeSubID:      u.SubscriptionID,
			CurrentPeriodEnd: u.CurrentPeriodEnd,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

// sumPaid adds up paid payments. Amounts are summed in Go so numeric columns
// keep their precision on every driver.
func sumPaid(since *time.Time) (decimal.Decimal, error) {
	q := database.DB.Model(&billing.Payment{}).Where("status = ?", "paid")
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}

	var amounts []decimal.Decimal
	if err := q.Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	return decimal.Sum(decimal.Zero, amounts...), nil
}

// GET /admin/stats
func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalProposals, monthProposals int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&proposals.Proposal{}).Count(&totalProposals)
	database.DB.Model(&proposals.Proposal{}).
		Where("created_at >= ?", proposals.MonthStart(time.Now())).
		Count(&monthProposals)

	total, err := sumPaid(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
		return
	}
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	recent, err := sumPaid(&thirtyDaysAgo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
		return
	}

	stats.TotalUsers = int(totalUsers)
	stats.TotalProposals = int(totalProposals)
	stats.ProposalsThisMonth = int(monthProposals)
	stats.TotalRevenue = total.StringFixed(2)
	stats.RecentRevenue = recent.StringFixed(2)

	type TierCount struct {
		Tier  string
		Count int
	}
	var counts []TierCount

	database.DB.
		Model(&users.User{}).
		Select("tier, COUNT(id) as count").
		Group("tier").
		Scan(&counts)

	stats.UsersPerTier = map[string]int{}
	for _, tc := range counts {
		stats.UsersPerTier[tc.Tier] = tc.Count
	}

	c.JSON(http.StatusOK, stats)
}

// GET /admin/users/:id
func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	used, err := proposals.CountActiveThisMonth(database.DB, user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute usage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":                 user,
		"payments":             payments,
		"proposals_this_month": used,
	})
}

// GET /admin/schema
func GetSchema(c *gin.Context) {
	if c.Query("format") == "zod" {
		c.JSON(http.StatusOK, entity.ZodSchemas(entity.Proposal))
		return
	}
	c.String(http.StatusOK, entity.CreateTableSQL(entity.Proposal))
}
