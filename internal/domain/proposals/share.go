package proposals

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

/*
	Share link helpers
	------------------
	- Responsible ONLY for:
	  • generating share slugs
	  • building public quote URLs
	- No persistence, no access logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe base slug from a proposal title.
// Example: "Website Redesign for Acme Corp." -> "website-redesign-for-acme-corp"
func MakeSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if len(base) > 48 {
		base = strings.Trim(base[:48], "-")
	}
	if base == "" {
		base = "quote"
	}
	return base
}

// NewShareSlug appends a random suffix so slugs stay unique across users.
func NewShareSlug(title string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return MakeSlug(title) + "-" + suffix
}

// BuildShareURL builds the public quote URL from a slug.
// Example: "website-redesign-3f9a..." -> "https://quotedrop.app/q/website-redesign-3f9a..."
func BuildShareURL(appURL, slug string) string {
	return strings.TrimRight(appURL, "/") + "/q/" + slug
}
