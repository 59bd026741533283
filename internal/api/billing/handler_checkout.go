package billing

import (
	"fmt"
	"net/http"

	"quotedrop/config"
	"quotedrop/database"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	portalSession "github.com/stripe/stripe-go/v75/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
	"go.uber.org/zap"
)

type CheckoutRequest struct {
	Tier     string `json:"tier" binding:"required"`
	Interval string `json:"interval"` // month (default) | year
}

// resolveCheckout maps a checkout request onto a catalog price id.
func resolveCheckout(cat *pricing.Catalog, req CheckoutRequest) (priceID string, interval pricing.Interval, err error) {
	tier := pricing.NormalizeTier(req.Tier)
	if !cat.IsPaidTier(tier) {
		return "", "", fmt.Errorf("tier %q is not a paid plan", req.Tier)
	}

	interval = pricing.IntervalMonth
	switch req.Interval {
	case "", "month", "monthly":
	case "year", "yearly":
		interval = pricing.IntervalYear
	default:
		return "", "", fmt.Errorf("unknown interval %q", req.Interval)
	}

	priceID, ok := cat.PriceIDFor(tier, interval)
	if !ok {
		return "", "", fmt.Errorf("no %s price configured for %s", interval, tier)
	}
	return priceID, interval, nil
}

func CreateCheckoutSession(c *gin.Context) {
	var body CheckoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid tier"})
		return
	}

	priceID, interval, err := resolveCheckout(pricing.Current(), body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stripe.Key = config.Settings.StripeSecretKey
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	// ensure stripe customer
	if user.StripeCustomerID == nil || *user.StripeCustomerID == "" {
		cus, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(user.Email),
			Metadata: map[string]string{
				"user_id": fmt.Sprint(user.ID),
			},
		})
		if err != nil {
			logging.L.Error("create stripe customer", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
			return
		}

		if err := database.DB.Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("stripe_customer_id", cus.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}

		user.StripeCustomerID = stripe.String(cus.ID)
	}

	tier, _ := pricing.GetPlanByPriceID(priceID)

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(config.AppURL + "/dashboard/settings?checkout=success"),
		CancelURL:  stripe.String(config.AppURL + "/pricing?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(*user.StripeCustomerID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},

		ClientReferenceID: stripe.String(fmt.Sprint(user.ID)),

		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"user_id":  fmt.Sprint(user.ID),
				"tier":     tier,
				"interval": string(interval),
			},
		},
	}

	// the Pro CTA promises a free trial
	if days := pricing.Current().TrialDays; days > 0 && user.SubscriptionID == nil && tier == pricing.TierPro {
		params.SubscriptionData.TrialPeriodDays = stripe.Int64(int64(days))
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

func CreateBillingPortal(c *gin.Context) {
	stripe.Key = config.Settings.StripeSecretKey
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	if user.StripeCustomerID == nil || *user.StripeCustomerID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No Stripe customer yet (subscribe first)"})
		return
	}

	portal, err := portalSession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*user.StripeCustomerID),
		ReturnURL: stripe.String(config.AppURL + "/dashboard/settings"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create billing portal session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": portal.URL})
}
