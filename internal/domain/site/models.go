package site

type NavItem struct {
	Title    string `json:"title" yaml:"title"`
	Href     string `json:"href" yaml:"href"`
	External bool   `json:"external,omitempty" yaml:"external,omitempty"`
}

type FooterLink struct {
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}

type FooterSection struct {
	Title string       `json:"title" yaml:"title"`
	Links []FooterLink `json:"links" yaml:"links"`
}

// Feature is a marketing card. Icon names a lucide icon; the client maps it.
type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Gradient    string `json:"gradient" yaml:"gradient"`
}

type CTA struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

type SocialProof struct {
	Text   string `json:"text" yaml:"text"`
	Rating string `json:"rating" yaml:"rating"`
}

type Hero struct {
	Badge             string       `json:"badge" yaml:"badge"`
	Headline          string       `json:"headline" yaml:"headline"`
	HeadlineHighlight string       `json:"headlineHighlight" yaml:"headline_highlight"`
	Subheadline       string       `json:"subheadline" yaml:"subheadline"`
	PrimaryCTA        CTA          `json:"primaryCta" yaml:"primary_cta"`
	SecondaryCTA      CTA          `json:"secondaryCta" yaml:"secondary_cta"`
	SocialProof       *SocialProof `json:"socialProof,omitempty" yaml:"social_proof,omitempty"`
}

type TechItem struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

type Social struct {
	Twitter string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	GitHub  string `json:"github,omitempty" yaml:"github,omitempty"`
	Discord string `json:"discord,omitempty" yaml:"discord,omitempty"`
}

// Config is the marketing content served verbatim to the web client.
type Config struct {
	Name            string          `json:"name" yaml:"name"`
	Tagline         string          `json:"tagline" yaml:"tagline"`
	Description     string          `json:"description" yaml:"description"`
	URL             string          `json:"url" yaml:"url"`
	Company         string          `json:"company" yaml:"company"`
	MainNav         []NavItem       `json:"mainNav" yaml:"main_nav"`
	DashboardNav    []NavItem       `json:"dashboardNav" yaml:"dashboard_nav"`
	Hero            Hero            `json:"hero" yaml:"hero"`
	Features        []Feature       `json:"features" yaml:"features"`
	TechStack       []TechItem      `json:"techStack" yaml:"tech_stack"`
	FooterSections  []FooterSection `json:"footerSections" yaml:"footer_sections"`
	FooterCopyright string          `json:"footerCopyright" yaml:"footer_copyright"`
	Social          Social          `json:"social" yaml:"social"`
}
