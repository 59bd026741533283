package pricing

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Unlimited marks a limit without a cap. It is never a literal count.
const Unlimited = -1

// LimitProposals caps the active proposals a user may create per month.
const LimitProposals = "proposals"

// Limits maps a named usage limit to its cap.
type Limits map[string]int

type Price struct {
	Monthly decimal.Decimal  `json:"monthly" yaml:"monthly"`
	Yearly  *decimal.Decimal `json:"yearly,omitempty" yaml:"yearly,omitempty"`
}

// MarshalJSON renders prices as JSON numbers, the shape pricing pages
// consume. Decoding accepts numbers and strings alike.
func (p Price) MarshalJSON() ([]byte, error) {
	out := struct {
		Monthly json.Number  `json:"monthly"`
		Yearly  *json.Number `json:"yearly,omitempty"`
	}{Monthly: json.Number(p.Monthly.String())}
	if p.Yearly != nil {
		y := json.Number(p.Yearly.String())
		out.Yearly = &y
	}
	return json.Marshal(out)
}

type Plan struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Price         Price    `json:"price" yaml:"price"`
	PriceID       string   `json:"priceId,omitempty" yaml:"price_id,omitempty"`
	YearlyPriceID string   `json:"yearlyPriceId,omitempty" yaml:"yearly_price_id,omitempty"`
	Limits        Limits   `json:"limits" yaml:"limits"`
	Features      []string `json:"features" yaml:"features"`
	Highlighted   bool     `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
	CTA           string   `json:"cta" yaml:"cta"`
}

// IsPaid reports whether the plan costs anything per month.
func (p Plan) IsPaid() bool {
	return p.Price.Monthly.IsPositive()
}

type Model string

const (
	ModelFreemium  Model = "freemium"
	ModelFreeTrial Model = "free-trial"
	ModelPaidOnly  Model = "paid-only"
)

type Interval string

const (
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)
