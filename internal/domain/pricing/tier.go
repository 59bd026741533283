package pricing

import "strings"

// Tier ids (single source of truth)
const (
	TierFree   = "free"
	TierPro    = "pro"
	TierStudio = "studio"
)

// NormalizeTier lowercases and trims a tier id coming from storage or Stripe
// metadata.
func NormalizeTier(tier string) string {
	return strings.ToLower(strings.TrimSpace(tier))
}
