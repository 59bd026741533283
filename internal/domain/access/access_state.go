package access

import (
	"time"

	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/infra/stripe"
)

// ComputeAccessState interprets the stored subscription of a user.
func ComputeAccessState(now time.Time, u users.User) AccessState {
	tier := pricing.NormalizeTier(u.Tier)
	if !pricing.IsPaidTier(tier) {
		return AccessFree
	}

	// Active trial on a paid tier
	if u.TrialEndAt != nil && now.Before(*u.TrialEndAt) {
		return AccessTrial
	}

	if u.SubscriptionID == nil || *u.SubscriptionID == "" {
		return AccessFree
	}

	switch stripe.NormalizeStatus(u.StripeSubscriptionStatus) {
	case stripe.StatusActive, stripe.StatusTrialing:
		return AccessPaid

	case stripe.StatusPastDue, stripe.StatusCanceled:
		if u.CurrentPeriodEnd != nil && now.Before(*u.CurrentPeriodEnd) {
			return AccessGrace
		}
		return AccessFree

	default:
		return AccessFree
	}
}

// EffectiveTier is the tier whose limits apply to the user right now.
func EffectiveTier(now time.Time, u users.User) string {
	if ComputeAccessState(now, u) == AccessFree {
		return pricing.TierFree
	}
	return pricing.NormalizeTier(u.Tier)
}
