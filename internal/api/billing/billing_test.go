package billing

import (
	"net/http"
	"testing"

	"quotedrop/database"
	domainbilling "quotedrop/internal/domain/billing"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCheckout(t *testing.T) {
	cat := pricing.NewCatalog(pricing.PriceIDs{ProMonthly: "pm", ProYearly: "py", StudioMonthly: "sm"})

	id, iv, err := resolveCheckout(cat, CheckoutRequest{Tier: "Pro"})
	require.NoError(t, err)
	assert.Equal(t, "pm", id)
	assert.Equal(t, pricing.IntervalMonth, iv)

	id, iv, err = resolveCheckout(cat, CheckoutRequest{Tier: "pro", Interval: "yearly"})
	require.NoError(t, err)
	assert.Equal(t, "py", id)
	assert.Equal(t, pricing.IntervalYear, iv)

	_, _, err = resolveCheckout(cat, CheckoutRequest{Tier: "free"})
	assert.Error(t, err)

	_, _, err = resolveCheckout(cat, CheckoutRequest{Tier: "studio", Interval: "year"})
	assert.Error(t, err)

	_, _, err = resolveCheckout(cat, CheckoutRequest{Tier: "pro", Interval: "weekly"})
	assert.Error(t, err)
}

func TestCheckoutRejectsFreeTierBeforeStripe(t *testing.T) {
	testutil.Setup(t)
	r := gin.New()
	r.POST("/checkout", CreateCheckoutSession)

	w := testutil.Do(t, r, http.MethodPost, "/checkout", "", map[string]any{"tier": "free"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHistory(t *testing.T) {
	testutil.Setup(t)
	user, _ := testutil.CreateUser(t, users.User{Email: "p@example.com"})
	require.NoError(t, database.DB.Create(&domainbilling.Payment{
		UserID:          user.ID,
		Tier:            pricing.TierPro,
		StripeSessionID: "cs_1",
		Amount:          decimal.NewFromInt(15),
		Status:          "paid",
	}).Error)

	r := gin.New()
	r.GET("/payments", func(c *gin.Context) { c.Set("user_id", user.ID) }, GetPaymentHistory)

	w := testutil.Do(t, r, http.MethodGet, "/payments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []PaymentEntry
	testutil.Decode(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, pricing.TierPro, got[0].Tier)
	assert.Equal(t, "Pro", got[0].PlanName)
	assert.Equal(t, "15.00", got[0].Amount)
	assert.Equal(t, "usd", got[0].Currency)
}

func TestPaymentHistoryEmptyIsList(t *testing.T) {
	testutil.Setup(t)
	user, _ := testutil.CreateUser(t, users.User{Email: "none@example.com"})

	r := gin.New()
	r.GET("/payments", func(c *gin.Context) { c.Set("user_id", user.ID) }, GetPaymentHistory)

	w := testutil.Do(t, r, http.MethodGet, "/payments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
