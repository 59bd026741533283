package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrBadLink = errors.New("bad link")

type link struct {
	where    string
	href     string
	external bool
}

func (c Config) links() []link {
	var out []link
	for _, n := range c.MainNav {
		out = append(out, link{"mainNav " + n.Title, n.Href, n.External})
	}
	for _, n := range c.DashboardNav {
		out = append(out, link{"dashboardNav " + n.Title, n.Href, n.External})
	}
	out = append(out,
		link{"hero.primaryCta", c.Hero.PrimaryCTA.Href, false},
		link{"hero.secondaryCta", c.Hero.SecondaryCTA.Href, false},
	)
	for _, s := range c.FooterSections {
		for _, l := range s.Links {
			out = append(out, link{"footer " + s.Title + "/" + l.Title, l.Href, false})
		}
	}
	for name, href := range map[string]string{
		"social.twitter": c.Social.Twitter,
		"social.github":  c.Social.GitHub,
		"social.discord": c.Social.Discord,
	} {
		if href != "" {
			out = append(out, link{name, href, true})
		}
	}
	return out
}

// CheckLinks verifies the hrefs of the site content: internal links are
// site-relative, external ones absolute http(s), and every in-page anchor
// targets a page that is itself linked (or the home page).
func CheckLinks(c Config) error {
	var errs []error
	pages := map[string]bool{"/": true}
	var anchored []link

	for _, l := range c.links() {
		if l.href == "" {
			errs = append(errs, fmt.Errorf("%w: %s has an empty href", ErrBadLink, l.where))
			continue
		}

		if l.external || !strings.HasPrefix(l.href, "/") {
			u, err := url.Parse(l.href)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				errs = append(errs, fmt.Errorf("%w: %s: %q is not an absolute http(s) URL", ErrBadLink, l.where, l.href))
			}
			continue
		}

		if strings.HasPrefix(l.href, "//") {
			errs = append(errs, fmt.Errorf("%w: %s: %q is protocol-relative", ErrBadLink, l.where, l.href))
			continue
		}

		path, frag, hasFrag := strings.Cut(l.href, "#")
		if hasFrag {
			if frag == "" {
				errs = append(errs, fmt.Errorf("%w: %s: %q has an empty anchor", ErrBadLink, l.where, l.href))
				continue
			}
			anchored = append(anchored, link{l.where, path, false})
			continue
		}
		pages[path] = true
	}

	for _, l := range anchored {
		if !pages[l.href] {
			errs = append(errs, fmt.Errorf("%w: %s: anchor on unlinked page %q", ErrBadLink, l.where, l.href))
		}
	}

	return errors.Join(errs...)
}
