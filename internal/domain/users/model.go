package users

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password *string `gorm:"" json:"-"`
	Role     string  `gorm:"not null;default:'user'"`

	// pricing tier id; the effective tier also depends on the subscription state
	Tier string `gorm:"column:tier;not null;default:'free'"`

	StripeCustomerID         *string    `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	SubscriptionID           *string    `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeSubscriptionStatus *string    `gorm:"column:stripe_subscription_status"`
	BillingInterval          string     `gorm:"column:billing_interval"`
	CurrentPeriodEnd         *time.Time `gorm:"column:current_period_end"`
	TrialEndAt               *time.Time `gorm:"column:trial_end_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
