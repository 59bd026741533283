package plans

import (
	"net/http"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/proposals"

	"github.com/gin-gonic/gin"
)

type PlanDTO struct {
	pricing.Plan
	YearlySavings string `json:"yearlySavings,omitempty"`
}

type CatalogResponse struct {
	Model         pricing.Model  `json:"model"`
	TrialDays     int            `json:"trialDays,omitempty"`
	DefaultLimits pricing.Limits `json:"defaultLimits"`
	Plans         []PlanDTO      `json:"plans"`
}

func toPlanDTO(p pricing.Plan) PlanDTO {
	dto := PlanDTO{Plan: p}
	if s := pricing.YearlySavings(p); s.IsPositive() {
		dto.YearlySavings = s.StringFixed(2)
	}
	return dto
}

// GET /pricing
func ListPlans(c *gin.Context) {
	cat := pricing.Current()

	out := CatalogResponse{
		Model:         cat.Model,
		TrialDays:     cat.TrialDays,
		DefaultLimits: cat.DefaultLimits,
		Plans:         make([]PlanDTO, 0, len(cat.Plans)),
	}
	for _, p := range cat.Plans {
		out.Plans = append(out.Plans, toPlanDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /pricing/:id
// Unknown ids resolve to the first plan, like every other plan lookup.
func GetPlan(c *gin.Context) {
	c.JSON(http.StatusOK, toPlanDTO(pricing.GetPlan(c.Param("id"))))
}

type LimitUsageDTO struct {
	Limit     int  `json:"limit"`
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
	Allowed   bool `json:"allowed"`
}

// GET /usage (auth)
func GetUsage(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tier := c.GetString("tier")

	used, err := proposals.CountActiveThisMonth(database.DB, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute usage"})
		return
	}
	usage := map[string]int{pricing.LimitProposals: used}

	cat := pricing.Current()
	limits := map[string]LimitUsageDTO{}
	for key, limit := range cat.Limits(tier) {
		u := usage[key]
		limits[key] = LimitUsageDTO{
			Limit:     limit,
			Used:      u,
			Remaining: cat.Remaining(tier, key, u),
			Allowed:   cat.CheckLimit(tier, key, u),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tier":    tier,
		"paid":    cat.IsPaidTier(tier),
		"plan":    toPlanDTO(cat.Plan(tier)),
		"limits":  limits,
		"resetAt": proposals.MonthStart(time.Now()).AddDate(0, 1, 0),
	})
}
