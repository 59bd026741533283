package pricing

import (
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Plan returns the plan with the given id, or the first plan when the id is
// unknown. It never fails.
func (c *Catalog) Plan(id string) Plan {
	if i, ok := c.byID[id]; ok {
		return c.Plans[i]
	}
	return c.Plans[0]
}

func (c *Catalog) lookup(id string) (Plan, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Plan{}, false
	}
	return c.Plans[i], true
}

// PlanByPriceID returns the id of the plan billed with the given Stripe
// price, monthly or yearly.
func (c *Catalog) PlanByPriceID(priceID string) (string, bool) {
	if priceID == "" {
		return "", false
	}
	for _, p := range c.Plans {
		if p.PriceID == priceID || p.YearlyPriceID == priceID {
			return p.ID, true
		}
	}
	return "", false
}

// Limits returns the tier's limits, or the default limits for an empty or
// unknown tier.
func (c *Catalog) Limits(tier string) Limits {
	if tier == "" {
		return c.DefaultLimits
	}
	if p, ok := c.lookup(tier); ok && p.Limits != nil {
		return p.Limits
	}
	return c.DefaultLimits
}

// CheckLimit reports whether one more unit of key is allowed at the current
// usage. Limits the tier does not define are never allowed.
func (c *Catalog) CheckLimit(tier, key string, usage int) bool {
	limit, ok := c.Limits(tier)[key]
	if !ok {
		return false
	}
	if limit == Unlimited {
		return true
	}
	return usage < limit
}

// Remaining returns how many units of key are left, -1 when unbounded and 0
// when the key is undefined or exhausted.
func (c *Catalog) Remaining(tier, key string, usage int) int {
	limit, ok := c.Limits(tier)[key]
	switch {
	case !ok:
		return 0
	case limit == Unlimited:
		return Unlimited
	case usage >= limit:
		return 0
	default:
		return limit - usage
	}
}

func (c *Catalog) IsPaidTier(tier string) bool {
	if tier == "" {
		return false
	}
	p, ok := c.lookup(tier)
	return ok && p.IsPaid()
}

func (c *Catalog) FreePlan() (Plan, bool) {
	for _, p := range c.Plans {
		if p.Price.Monthly.IsZero() {
			return p, true
		}
	}
	return Plan{}, false
}

func (c *Catalog) PaidPlans() []Plan {
	out := []Plan{}
	for _, p := range c.Plans {
		if p.IsPaid() {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) HighlightedPlan() (Plan, bool) {
	for _, p := range c.Plans {
		if p.Highlighted {
			return p, true
		}
	}
	return Plan{}, false
}

// PlanPrice returns the monthly price of a tier, zero when unknown.
func (c *Catalog) PlanPrice(tier string) decimal.Decimal {
	if tier == "" {
		return decimal.Zero
	}
	if p, ok := c.lookup(tier); ok {
		return p.Price.Monthly
	}
	return decimal.Zero
}

// PriceIDFor returns the Stripe price billing tier at the given interval.
func (c *Catalog) PriceIDFor(tier string, interval Interval) (string, bool) {
	p, ok := c.lookup(tier)
	if !ok {
		return "", false
	}
	id := p.PriceID
	if interval == IntervalYear {
		id = p.YearlyPriceID
	}
	return id, id != ""
}

// YearlySavings is what a year costs on monthly billing minus the yearly
// price. Zero when the plan has no yearly price.
func YearlySavings(p Plan) decimal.Decimal {
	if p.Price.Yearly == nil {
		return decimal.Zero
	}
	return p.Price.Monthly.Mul(decimal.NewFromInt(12)).Sub(*p.Price.Yearly)
}

var current atomic.Pointer[Catalog]

func init() {
	current.Store(NewCatalog(PriceIDs{}))
}

// Load installs the catalog used by the package-level helpers. main calls it
// once after reading the Stripe price ids from the environment.
func Load(c *Catalog) {
	current.Store(c)
}

// Current returns the loaded catalog.
func Current() *Catalog { return current.Load() }

func GetPlan(id string) Plan {
	return Current().Plan(id)
}

func GetPlanByPriceID(priceID string) (string, bool) {
	return Current().PlanByPriceID(priceID)
}

func GetLimits(tier string) Limits {
	return Current().Limits(tier)
}

func CheckLimit(tier, key string, usage int) bool {
	return Current().CheckLimit(tier, key, usage)
}

func IsPaidTier(tier string) bool {
	return Current().IsPaidTier(tier)
}

func GetFreePlan() (Plan, bool) {
	return Current().FreePlan()
}

func GetPaidPlans() []Plan {
	return Current().PaidPlans()
}

func GetHighlightedPlan() (Plan, bool) {
	return Current().HighlightedPlan()
}

func GetPlanPrice(tier string) decimal.Decimal {
	return Current().PlanPrice(tier)
}
