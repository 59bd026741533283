package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"

	"quotedrop/database"
	"quotedrop/internal/domain/billing"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/users"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	subscriptionID := fullSession.Subscription.ID

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	// metadata.user_id preferred, else ClientReferenceID
	userID, err := userIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	updates, ok := subscriptionUpdates(pricing.Current(), subData)
	if !ok {
		return fmt.Errorf("no plan for stripe price_id=%s", subData.Items.Data[0].Price.ID)
	}
	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		updates["stripe_customer_id"] = fullSession.Customer.ID
	}

	// a second checkout replaces the previous subscription
	if user.SubscriptionID != nil && *user.SubscriptionID != "" && *user.SubscriptionID != subscriptionID {
		_, _ = subscription.Cancel(*user.SubscriptionID, nil)
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&users.User{}).
			Where("id = ?", user.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update user after checkout: %w", err)
		}

		payment := paymentFromSession(user.ID, updates["tier"].(string), fullSession)
		// Stripe retries deliveries; the session id makes the insert idempotent
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return nil
	})
}

func paymentFromSession(userID uint, tier string, s *stripe.CheckoutSession) billing.Payment {
	p := billing.Payment{
		UserID:          userID,
		Tier:            tier,
		StripeSessionID: s.ID,
		Amount:          decimal.New(s.AmountTotal, -2),
		Currency:        string(s.Currency),
		Status:          string(s.PaymentStatus),
	}
	if p.Currency == "" {
		p.Currency = "usd"
	}
	if s.Subscription != nil && s.Subscription.ID != "" {
		p.StripeSubscriptionID = stripe.String(s.Subscription.ID)
	}
	return p
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}
