package users

import (
	"time"

	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/infra/stripe"
)

func BuildPlanDTO(tier string) PlanDTO {
	p := pricing.GetPlan(pricing.NormalizeTier(tier))
	return PlanDTO{
		ID:           p.ID,
		Name:         p.Name,
		MonthlyPrice: p.Price.Monthly.StringFixed(2),
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionID == nil || *u.SubscriptionID == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               string(stripe.NormalizeStatus(u.StripeSubscriptionStatus)),
		Interval:             u.BillingInterval,
		CurrentPeriodEnd:     u.CurrentPeriodEnd,
		StripeSubscriptionID: u.SubscriptionID,
	}
}

func BuildTrialDTO(now time.Time, end *time.Time) *TrialDTO {
	if end == nil {
		return nil
	}

	d := 0
	if now.Before(*end) {
		d = int(end.Sub(now).Hours() / 24)
	}
	return &TrialDTO{EndsAt: end, DaysLeft: d}
}

func BuildUsageDTO(now time.Time, tier string, used int) UsageDTO {
	cat := pricing.Current()
	limit, ok := cat.Limits(tier)[pricing.LimitProposals]
	if !ok {
		limit = 0
	}
	return UsageDTO{
		Proposals: used,
		Limit:     limit,
		Remaining: cat.Remaining(tier, pricing.LimitProposals, used),
		ResetsAt:  proposals.MonthStart(now).AddDate(0, 1, 0),
	}
}
