package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a completed checkout.
type Payment struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	UserID               uint            `gorm:"not null;index" json:"-"`
	Tier                 string          `gorm:"not null" json:"tier"`
	StripeSessionID      string          `gorm:"uniqueIndex" json:"-"`
	StripeSubscriptionID *string         `json:"-"`
	Amount               decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency             string          `gorm:"not null;default:'usd'" json:"currency"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
}
