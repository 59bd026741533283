package users

import "time"

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
	Access  AccessDTO  `json:"access"`
	Usage   UsageDTO   `json:"usage"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         PlanDTO          `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

// PlanDTO is the subscribed tier, which may differ from the effective one.
type PlanDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MonthlyPrice string `json:"monthly_price"`
}

type SubscriptionDTO struct {
	Status               string     `json:"status"`
	Interval             string     `json:"interval"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

type TrialDTO struct {
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft int        `json:"days_left"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	State string `json:"state"` // trial|paid|grace|free
	Tier  string `json:"tier"`  // effective tier
}

/* ---------- USAGE ---------- */

type UsageDTO struct {
	Proposals int       `json:"proposals"`
	Limit     int       `json:"limit"`     // -1 = unlimited
	Remaining int       `json:"remaining"` // -1 = unlimited
	ResetsAt  time.Time `json:"resets_at"`
}
