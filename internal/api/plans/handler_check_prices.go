package plans

import (
	"net/http"

	"quotedrop/config"
	"quotedrop/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

// PriceCheck is the reconciliation of one catalog price id against Stripe.
type PriceCheck struct {
	Tier     string `json:"tier"`
	Interval string `json:"interval"`
	PriceID  string `json:"price_id"`
	Status   string `json:"status"` // ok | missing | inactive | not_recurring | interval_mismatch | unset
	Amount   string `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// stripePrice is the subset of a Stripe price the check needs.
type stripePrice struct {
	ID         string
	Active     bool
	Recurring  string // "" when not recurring
	UnitAmount int64
	Currency   string
}

// ComparePrices matches every paid plan's price ids against the prices
// listed from Stripe.
func ComparePrices(cat *pricing.Catalog, prices []stripePrice) []PriceCheck {
	byID := make(map[string]stripePrice, len(prices))
	for _, p := range prices {
		byID[p.ID] = p
	}

	var out []PriceCheck
	for _, plan := range cat.PaidPlans() {
		intervals := []struct {
			interval pricing.Interval
			id       string
			wanted   bool
		}{
			{pricing.IntervalMonth, plan.PriceID, true},
			{pricing.IntervalYear, plan.YearlyPriceID, plan.Price.Yearly != nil},
		}

		for _, iv := range intervals {
			if !iv.wanted {
				continue
			}
			check := PriceCheck{Tier: plan.ID, Interval: string(iv.interval), PriceID: iv.id}

			sp, found := byID[iv.id]
			switch {
			case iv.id == "":
				check.Status = "unset"
			case !found:
				check.Status = "missing"
			case !sp.Active:
				check.Status = "inactive"
			case sp.Recurring == "":
				check.Status = "not_recurring"
			case sp.Recurring != string(iv.interval):
				check.Status = "interval_mismatch"
			default:
				check.Status = "ok"
			}
			if found {
				check.Amount = formatMinorUnits(sp.UnitAmount)
				check.Currency = sp.Currency
			}
			out = append(out, check)
		}
	}
	return out
}

func formatMinorUnits(v int64) string {
	return decimal.New(v, -2).StringFixed(2)
}

// POST /admin/check-prices
func CheckPricesAgainstStripe(c *gin.Context) {
	stripe.Key = config.Settings.StripeSecretKey
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	params := &stripe.PriceListParams{}
	params.Type = stripe.String("recurring")

	it := price.List(params)

	var prices []stripePrice
	for it.Next() {
		p := it.Price()
		sp := stripePrice{
			ID:         p.ID,
			Active:     p.Active,
			UnitAmount: p.UnitAmount,
			Currency:   string(p.Currency),
		}
		if p.Recurring != nil {
			sp.Recurring = string(p.Recurring.Interval)
		}
		prices = append(prices, sp)
	}

	if err := it.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Stripe prices", "details": err.Error()})
		return
	}

	checks := ComparePrices(pricing.Current(), prices)
	ok := 0
	for _, ch := range checks {
		if ch.Status == "ok" {
			ok++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"checked": len(checks),
		"ok":      ok,
		"prices":  checks,
	})
}
