// Package pages holds the landing page content and markup.
package pages

import "github.com/leapstack-labs/anatomy/internal/ui/components"

// DocsPath is the internal destination of the hero call-to-action.
const DocsPath = "/docs"

// HeroSection is the top-of-page introduction.
type HeroSection struct {
	Title    string
	Subtitle string
	CTALabel string
	CTAHref  string
}

// FeatureItem is one entry of the feature grid.
type FeatureItem struct {
	Icon  components.IconName
	Title string
	Body  string
}

// SectionHeading is the eyebrow and heading pair that opens a section.
type SectionHeading struct {
	Eyebrow string
	Heading string
}

// ClosingStatement is the final text-only section.
type ClosingStatement struct {
	Heading    string
	Subheading string
	Body       string
}

// HeroContent is the hero copy.
var HeroContent = HeroSection{
	Title:    "The Anatomy of Excellence",
	Subtitle: "A living document on the principles of building enduring software. This is not a rulebook; it's a reflection of our craft.",
	CTALabel: "Begin the Journey",
	CTAHref:  DocsPath,
}

// FeatureHeading introduces the feature grid.
var FeatureHeading = SectionHeading{
	Eyebrow: "The Pillars of Our Craft",
	Heading: "Principles for a New Age of Development",
}

// Features are the feature grid entries in display order.
var Features = [3]FeatureItem{
	{
		Icon:  components.IconFeather,
		Title: "Clarity",
		Body:  "We believe that clarity is the bedrock of maintainable software. It's about writing code that is not just understood by machines, but by humans.",
	},
	{
		Icon:  components.IconScale,
		Title: "Resilience",
		Body:  "We build systems that are designed to withstand the test of time. Resilience is not just about handling errors; it's about architecting for the unknown.",
	},
	{
		Icon:  components.IconGitMerge,
		Title: "Velocity",
		Body:  "We believe that speed is a byproduct of quality. By investing in our tools, our processes, and our people, we create an environment where we can move fast and with confidence.",
	},
}

// ClosingContent is the closing statement copy.
var ClosingContent = ClosingStatement{
	Heading:    "A Living System",
	Subheading: "Not a Static Document",
	Body:       "These guidelines are not handed down from on high. They are the product of a continuous dialogue, a collective effort to refine our understanding of what it means to build great software. This is a living system, constantly evolving as we learn, grow, and adapt to new challenges.",
}
