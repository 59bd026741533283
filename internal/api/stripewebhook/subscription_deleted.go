package stripewebhooks

import (
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionDeleted keeps the paid tier on record; the effective tier
// drops to free once current_period_end passes.
func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	user, ok := findSubscriber(sub)
	if !ok || !isCurrentSubscription(user, sub.ID) {
		return nil
	}

	updates := map[string]interface{}{
		"stripe_subscription_status": string(stripe.SubscriptionStatusCanceled),
		"trial_end_at":               nil,
	}
	if sub.CurrentPeriodEnd > 0 {
		updates["current_period_end"] = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}

	return database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error
}
