package site

import "strings"

const localURL = "http://localhost:3000"

// ResolveURL picks the public base URL from the environment: an explicit app
// URL first, then the hosting provider's production and deployment hosts.
func ResolveURL(lookup func(string) string) string {
	for _, key := range []string{"APP_URL", "NEXT_PUBLIC_APP_URL"} {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return strings.TrimRight(v, "/")
		}
	}
	for _, key := range []string{"VERCEL_PROJECT_PRODUCTION_URL", "VERCEL_URL"} {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return "https://" + strings.TrimRight(v, "/")
		}
	}
	return localURL
}

// Default returns the QuoteDrop site content for the given base URL.
func Default(url string) Config {
	if url == "" {
		url = localURL
	}

	return Config{
		Name:        "QuoteDrop",
		Tagline:     "Professional quotes in seconds, not hours",
		Description: "A client proposal and quote builder for freelancers with shareable links, instant notifications, and win/loss analytics.",
		URL:         url,
		Company:     "QuoteDrop",

		MainNav: []NavItem{
			{Title: "Features", Href: "/features"},
			{Title: "Pricing", Href: "/pricing"},
			{Title: "FAQ", Href: "/#faq"},
		},

		DashboardNav: []NavItem{
			{Title: "Dashboard", Href: "/dashboard"},
			{Title: "Proposals", Href: "/dashboard/proposals"},
			{Title: "Analytics", Href: "/dashboard/analytics"},
			{Title: "Settings", Href: "/dashboard/settings"},
		},

		Hero: Hero{
			Badge:             "Built for freelancers, not sales teams",
			Headline:          "Create stunning client quotes",
			HeadlineHighlight: "In under 90 seconds",
			Subheadline:       "Stop losing deals to ugly Google Doc estimates. QuoteDrop lets you build professional, trackable proposals, send them as beautiful shareable links, and get notified the instant a client says yes — at 1/3 the cost of existing tools.",
			PrimaryCTA:        CTA{Text: "Start Free — No Card Required", Href: "/register"},
			SecondaryCTA:      CTA{Text: "See How It Works", Href: "/features"},
			SocialProof:       &SocialProof{Text: "Trusted by 2,000+ freelancers worldwide", Rating: "4.9/5"},
		},

		Features: []Feature{
			{
				Icon:        "zap",
				Title:       "90-Second Quote Builder",
				Description: "Pick a template, add your line items, set your terms, and generate a shareable link — all in under 90 seconds flat.",
				Gradient:    "from-amber-500 to-orange-500",
			},
			{
				Icon:        "globe",
				Title:       "Shareable Quote Links",
				Description: "Every quote is a beautiful, mobile-responsive web page your clients can view, accept, or comment on — no login required.",
				Gradient:    "from-cyan-500 to-blue-500",
			},
			{
				Icon:        "bell",
				Title:       "Real-Time Notifications",
				Description: "Get instant alerts when a client opens, views, or accepts your quote. No more awkward follow-up guessing games.",
				Gradient:    "from-violet-500 to-purple-500",
			},
			{
				Icon:        "bar-chart",
				Title:       "Win/Loss Analytics",
				Description: "Track your close rate, average quote value, and time-to-decision so you can refine your pricing and win more work.",
				Gradient:    "from-emerald-500 to-green-500",
			},
			{
				Icon:        "palette",
				Title:       "Professional Templates",
				Description: "Choose from clean, conversion-optimized templates designed for designers, developers, copywriters, and consultants.",
				Gradient:    "from-pink-500 to-rose-500",
			},
			{
				Icon:        "receipt",
				Title:       "Quote-to-Invoice Conversion",
				Description: "When a client accepts, convert your quote to an invoice with one click and get paid via Stripe or PayPal instantly.",
				Gradient:    "from-indigo-500 to-blue-500",
			},
		},

		TechStack: []TechItem{
			{Name: "Next.js", Color: "bg-black text-white"},
			{Name: "Supabase", Color: "bg-emerald-600 text-white"},
			{Name: "Stripe", Color: "bg-purple-600 text-white"},
			{Name: "Tailwind CSS", Color: "bg-sky-500 text-white"},
			{Name: "Resend", Color: "bg-gray-800 text-white"},
		},

		FooterSections: []FooterSection{
			{
				Title: "Product",
				Links: []FooterLink{
					{Title: "Features", Href: "/features"},
					{Title: "Pricing", Href: "/pricing"},
					{Title: "Templates", Href: "/features#templates"},
					{Title: "Changelog", Href: "/changelog"},
				},
			},
			{
				Title: "Company",
				Links: []FooterLink{
					{Title: "About", Href: "/about"},
					{Title: "Blog", Href: "/blog"},
					{Title: "Contact", Href: "/contact"},
				},
			},
			{
				Title: "Legal",
				Links: []FooterLink{
					{Title: "Privacy Policy", Href: "/privacy"},
					{Title: "Terms of Service", Href: "/terms"},
					{Title: "Cookie Policy", Href: "/cookies"},
				},
			},
		},

		FooterCopyright: "2026 QuoteDrop. All rights reserved.",

		Social: Social{
			Discord: "https://discord.gg/quotedrop",
			Twitter: "https://twitter.com/quotedrop",
		},
	}
}
