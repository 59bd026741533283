package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLinksAreConsistent(t *testing.T) {
	require.NoError(t, CheckLinks(Default("")))
}

func TestCheckLinksReportsEveryProblem(t *testing.T) {
	c := Default("https://quotedrop.app")
	c.MainNav = append(c.MainNav,
		NavItem{Title: "Docs", Href: "docs.quotedrop.app", External: true},
		NavItem{Title: "Empty", Href: ""},
		NavItem{Title: "Jobs", Href: "/jobs#open"},
	)
	c.Social.GitHub = "github.com/quotedrop"

	err := CheckLinks(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadLink))
	assert.Contains(t, err.Error(), "mainNav Docs")
	assert.Contains(t, err.Error(), "mainNav Empty has an empty href")
	assert.Contains(t, err.Error(), `anchor on unlinked page "/jobs"`)
	assert.Contains(t, err.Error(), "social.github")
}

func TestResolveURL(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	assert.Equal(t, "https://quotedrop.app", ResolveURL(env(map[string]string{
		"APP_URL":    "https://quotedrop.app/",
		"VERCEL_URL": "preview.vercel.app",
	})))
	assert.Equal(t, "https://prod.vercel.app", ResolveURL(env(map[string]string{
		"VERCEL_PROJECT_PRODUCTION_URL": "prod.vercel.app",
		"VERCEL_URL":                    "preview.vercel.app",
	})))
	assert.Equal(t, "https://preview.vercel.app", ResolveURL(env(map[string]string{
		"VERCEL_URL": "preview.vercel.app",
	})))
	assert.Equal(t, "http://localhost:3000", ResolveURL(env(nil)))
}

func TestDefaultContent(t *testing.T) {
	c := Default("")
	assert.Equal(t, "http://localhost:3000", c.URL)
	assert.Len(t, c.Features, 6)
	assert.Len(t, c.FooterSections, 3)
	assert.Equal(t, "/register", c.Hero.PrimaryCTA.Href)
}
