package billing

import (
	"net/http"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/billing"
	"quotedrop/internal/domain/pricing"

	"github.com/gin-gonic/gin"
)

// PaymentEntry is one row of the billing history page.
type PaymentEntry struct {
	ID        uint      `json:"id"`
	Tier      string    `json:"tier"`
	PlanName  string    `json:"plan_name"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func paymentEntry(p billing.Payment) PaymentEntry {
	return PaymentEntry{
		ID:        p.ID,
		Tier:      p.Tier,
		PlanName:  pricing.GetPlan(p.Tier).Name,
		Amount:    p.Amount.StringFixed(2),
		Currency:  p.Currency,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]PaymentEntry, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentEntry(p))
	}
	c.JSON(http.StatusOK, out)
}
