package stripewebhooks

import (
	"errors"
	"strconv"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/logging"

	"github.com/stripe/stripe-go/v75"
	"go.uber.org/zap"
)

func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return errors.New("subscription missing id/items/price")
	}

	user, ok := findSubscriber(sub)
	if !ok {
		// acknowledge to avoid Stripe retries if the user is gone
		return nil
	}

	// events for a replaced subscription arrive after checkout cancels it
	if !isCurrentSubscription(user, sub.ID) &&
		sub.Status != stripe.SubscriptionStatusActive &&
		sub.Status != stripe.SubscriptionStatusTrialing {
		logging.L.Info("ignoring update of a replaced subscription",
			zap.Uint("user_id", user.ID),
			zap.String("subscription_id", sub.ID))
		return nil
	}

	updates, ok := subscriptionUpdates(pricing.Current(), sub)
	if !ok {
		logging.L.Warn("subscription price not in catalog",
			zap.String("subscription_id", sub.ID),
			zap.String("price_id", sub.Items.Data[0].Price.ID))
		return nil
	}

	return database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error
}

// subscriptionUpdates maps a Stripe subscription onto user columns. It
// reports false when the subscribed price belongs to no plan.
func subscriptionUpdates(cat *pricing.Catalog, sub *stripe.Subscription) (map[string]interface{}, bool) {
	price := sub.Items.Data[0].Price
	tier, ok := cat.PlanByPriceID(price.ID)
	if !ok {
		return nil, false
	}

	updates := map[string]interface{}{
		"tier":                       tier,
		"subscription_id":            sub.ID,
		"stripe_subscription_status": string(sub.Status),
		"current_period_end":         time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
		"billing_interval":           string(pricing.IntervalMonth),
		"trial_end_at":               nil,
	}
	if price.Recurring != nil && price.Recurring.Interval == stripe.PriceRecurringIntervalYear {
		updates["billing_interval"] = string(pricing.IntervalYear)
	}
	if sub.TrialEnd > 0 {
		updates["trial_end_at"] = time.Unix(sub.TrialEnd, 0).UTC()
	}
	if sub.Customer != nil && sub.Customer.ID != "" {
		updates["stripe_customer_id"] = sub.Customer.ID
	}
	return updates, true
}

// isCurrentSubscription reports whether subID is the subscription stored on
// the user, or the user has none yet.
func isCurrentSubscription(u users.User, subID string) bool {
	return u.SubscriptionID == nil || *u.SubscriptionID == "" || *u.SubscriptionID == subID
}

func findSubscriber(sub *stripe.Subscription) (users.User, bool) {
	var user users.User
	if userID := userIDFromMetadata(sub.Metadata); userID != 0 {
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err == nil {
			return user, true
		}
	}
	if err := database.DB.Where("subscription_id = ?", sub.ID).First(&user).Error; err == nil {
		return user, true
	}
	return users.User{}, false
}

func userIDFromMetadata(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
