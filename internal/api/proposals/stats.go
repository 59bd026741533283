package proposals

import (
	"net/http"

	"quotedrop/database"
	"quotedrop/internal/domain/entity"
	"quotedrop/internal/domain/proposals"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// StatsResponse is the win/loss summary of a user's proposals.
type StatsResponse struct {
	ByStatus      map[string]int `json:"by_status"`
	Decided       int            `json:"decided"`
	WinRate       string         `json:"win_rate"` // accepted / (accepted + rejected), 0-1
	AcceptedValue string         `json:"accepted_value"`
}

func winRate(accepted, rejected int) decimal.Decimal {
	if accepted+rejected == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(accepted)).
		DivRound(decimal.NewFromInt(int64(accepted+rejected)), 4)
}

// GET /stats (paid)
func GetProposalStats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	type statusCount struct {
		Status string
		Count  int
	}
	var counts []statusCount
	if err := userProposalsQuery(database.DB, userID).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	var amounts []decimal.Decimal
	if err := userProposalsQuery(database.DB, userID).
		Where("status = ?", proposals.StatusAccepted).
		Pluck("total_amount", &amounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	resp := StatsResponse{ByStatus: map[string]int{}}
	for _, s := range entity.ProposalStatuses {
		resp.ByStatus[s] = 0
	}
	for _, sc := range counts {
		resp.ByStatus[sc.Status] = sc.Count
	}

	accepted := resp.ByStatus[proposals.StatusAccepted]
	rejected := resp.ByStatus[proposals.StatusRejected]
	resp.Decided = accepted + rejected
	resp.WinRate = winRate(accepted, rejected).String()
	resp.AcceptedValue = decimal.Sum(decimal.Zero, amounts...).StringFixed(2)

	c.JSON(http.StatusOK, resp)
}
