package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceIDs are the Stripe price ids of the paid plans. They come from the
// environment and may be empty in development.
type PriceIDs struct {
	ProMonthly    string
	ProYearly     string
	StudioMonthly string
	StudioYearly  string
}

// Catalog is the pricing table. It is built once at startup and never
// mutated afterwards.
type Catalog struct {
	Model         Model  `json:"model" yaml:"model"`
	TrialDays     int    `json:"trialDays,omitempty" yaml:"trial_days,omitempty"`
	DefaultLimits Limits `json:"defaultLimits" yaml:"default_limits"`
	Plans         []Plan `json:"plans" yaml:"plans"`

	byID map[string]int
}

func yearly(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// NewCatalog builds the QuoteDrop pricing table.
func NewCatalog(ids PriceIDs) *Catalog {
	return newCatalog(Catalog{
		Model:     ModelFreemium,
		TrialDays: 14,
		DefaultLimits: Limits{
			LimitProposals: 5,
		},
		Plans: []Plan{
			{
				ID:          TierFree,
				Name:        "Free Forever",
				Description: "Everything you need to start sending professional quotes",
				Price:       Price{Monthly: decimal.Zero},
				Limits: Limits{
					LimitProposals: 5,
				},
				Features: []string{
					"Up to 5 active quotes per month",
					"All core templates included",
					"Shareable quote links",
					"Real-time open & acceptance notifications",
					"Basic dashboard with status tracking",
					"QuoteDrop branding on quotes",
				},
				CTA: "Get Started Free",
			},
			{
				ID:            TierPro,
				Name:          "Pro",
				Description:   "For freelancers who are serious about winning more work",
				Price:         Price{Monthly: decimal.NewFromInt(15), Yearly: yearly(144)},
				PriceID:       ids.ProMonthly,
				YearlyPriceID: ids.ProYearly,
				Limits: Limits{
					LimitProposals: Unlimited,
				},
				Features: []string{
					"Unlimited quotes",
					"Remove QuoteDrop branding",
					"Custom branding (logo, colors)",
					"Win/loss analytics dashboard",
					"Quote-to-invoice conversion",
					"Stripe & PayPal payment links",
					"Revision tracking & version history",
					"Custom domain for quote links",
					"Priority email support",
				},
				Highlighted: true,
				CTA:         "Start Pro — 14 Days Free",
			},
			{
				ID:            TierStudio,
				Name:          "Studio",
				Description:   "For freelancers growing into small agencies",
				Price:         Price{Monthly: decimal.NewFromInt(35), Yearly: yearly(336)},
				PriceID:       ids.StudioMonthly,
				YearlyPriceID: ids.StudioYearly,
				Limits: Limits{
					LimitProposals: Unlimited,
				},
				Features: []string{
					"Everything in Pro",
					"Up to 5 team members included",
					"AI-powered pricing suggestions",
					"Advanced analytics (close rate by service, client, period)",
					"Client portal with proposal history",
					"API access & Zapier integration",
					"Advanced template design editor",
					"Phone support",
				},
				CTA: "Start Studio Trial",
			},
		},
	})
}

func newCatalog(c Catalog) *Catalog {
	c.byID = make(map[string]int, len(c.Plans))
	for i, p := range c.Plans {
		if _, dup := c.byID[p.ID]; !dup {
			c.byID[p.ID] = i
		}
	}
	return &c
}

var (
	ErrNoPlans        = errors.New("catalog has no plans")
	ErrDuplicatePlan  = errors.New("duplicate plan id")
	ErrInvalidLimit   = errors.New("limit below the unlimited sentinel")
	ErrDuplicatePrice = errors.New("stripe price id used by more than one plan")
)

// Validate checks the catalog invariants: unique plan ids, unique price ids
// and no negative caps other than Unlimited.
func (c *Catalog) Validate() error {
	if len(c.Plans) == 0 {
		return ErrNoPlans
	}

	ids := map[string]bool{}
	prices := map[string]string{}
	for _, p := range c.Plans {
		if ids[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlan, p.ID)
		}
		ids[p.ID] = true

		for key, v := range p.Limits {
			if v < Unlimited {
				return fmt.Errorf("%w: %s.%s=%d", ErrInvalidLimit, p.ID, key, v)
			}
		}

		for _, pid := range []string{p.PriceID, p.YearlyPriceID} {
			if pid == "" {
				continue
			}
			if owner, ok := prices[pid]; ok && owner != p.ID {
				return fmt.Errorf("%w: %s (%s, %s)", ErrDuplicatePrice, pid, owner, p.ID)
			}
			prices[pid] = p.ID
		}
	}

	for key, v := range c.DefaultLimits {
		if v < Unlimited {
			return fmt.Errorf("%w: default.%s=%d", ErrInvalidLimit, key, v)
		}
	}
	return nil
}
