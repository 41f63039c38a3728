package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/leapstack-labs/anatomy/internal/ui/components"
)

// Page renders the complete landing document.
func Page(meta Meta) templ.Component {
	return components.Templ(PageNode(meta))
}

// Landing renders the landing body without the document shell.
func Landing() templ.Component {
	return components.Templ(LandingNode())
}

// PageNode returns the landing document: doctype, head and body.
func PageNode(meta Meta) g.Node {
	meta = meta.withDefaults()

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(meta.Title)),
				h.Meta(h.Name("description"), h.Content(meta.Description)),
				h.Link(h.Rel("stylesheet"), h.Href(StylesheetPath)),
				g.If(meta.Dev, h.Script(h.Type("module"), h.Src(DatastarScriptURL))),
			),
			h.Body(
				g.If(meta.Dev, h.Div(h.ID("reload"), h.Data("init", "@get('"+ReloadPath+"')"))),
				LandingNode(),
			),
		),
	)
}

// LandingNode returns the page body: the hero, the feature grid and the
// closing statement inside the main content wrapper, followed by the footer.
func LandingNode() g.Node {
	return h.Div(
		h.Class("bg-color-base text-color-base antialiased"),
		h.Div(
			h.ID("page"),
			h.Class("flex flex-col min-h-screen"),
			h.Main(
				h.Class("flex-grow"),
				Hero(),
				FeatureGrid(),
				Closing(),
			),
			components.Footer(),
		),
	)
}

// Hero renders the introductory region with the single call-to-action.
func Hero() g.Node {
	return h.Div(
		h.ID("hero"),
		h.Class("relative isolate overflow-hidden"),
		h.Div(h.Class("hero-backdrop absolute inset-0 -z-10 opacity-20")),
		h.Div(
			h.Class("mx-auto max-w-6xl px-6 lg:px-8 pt-32 pb-24 sm:pt-48 sm:pb-32"),
			h.Div(
				h.Class("text-center"),
				h.H1(
					h.Class("text-5xl font-bold tracking-tighter text-color-high sm:text-7xl"),
					g.Text(HeroContent.Title),
				),
				h.P(
					h.Class("mt-6 text-lg leading-8 text-color-low max-w-3xl mx-auto"),
					g.Text(HeroContent.Subtitle),
				),
				h.Div(
					h.Class("mt-10 flex items-center justify-center gap-x-6"),
					components.Button(
						components.ButtonProps{Size: components.ButtonSizeLarge, AsChild: true},
						components.Link(HeroContent.CTAHref,
							g.Text(HeroContent.CTALabel+" "),
							components.Icon(components.IconArrowRight, "ml-2 h-5 w-5"),
						),
					),
				),
			),
		),
	)
}

// FeatureGrid renders the three feature entries: one column on narrow
// viewports, two from sm and three from lg.
func FeatureGrid() g.Node {
	return h.Div(
		h.ID("features"),
		h.Class("py-24 sm:py-32"),
		h.Div(
			h.Class("mx-auto max-w-7xl px-6 lg:px-8"),
			sectionHeading(FeatureHeading.Eyebrow, FeatureHeading.Heading),
			h.Div(
				h.Class("mx-auto mt-16 max-w-2xl sm:mt-20 lg:mt-24 lg:max-w-none"),
				h.Dl(
					h.Class("grid grid-cols-1 gap-x-8 gap-y-16 text-base leading-7 sm:grid-cols-2 lg:grid-cols-3"),
					featureEntry(Features[0]),
					featureEntry(Features[1]),
					featureEntry(Features[2]),
				),
			),
		),
	)
}

func featureEntry(f FeatureItem) g.Node {
	return h.Div(
		h.Class("flex flex-col"),
		h.Dt(
			h.Class("flex items-center gap-x-3 font-semibold text-color-high"),
			components.Icon(f.Icon, "h-5 w-5 flex-none text-color-accent-base"),
			g.Text(f.Title),
		),
		h.Dd(
			h.Class("mt-4 flex flex-auto flex-col text-base leading-7 text-color-low"),
			h.P(h.Class("flex-auto"), g.Text(f.Body)),
		),
	)
}

// Closing renders the text-only closing statement.
func Closing() g.Node {
	return h.Div(
		h.ID("closing"),
		h.Class("bg-color-low/30 py-24 sm:py-32"),
		h.Div(
			h.Class("mx-auto max-w-7xl px-6 lg:px-8"),
			sectionHeading(ClosingContent.Heading, ClosingContent.Subheading,
				h.P(
					h.Class("mt-6 text-lg leading-8 text-color-low"),
					g.Text(ClosingContent.Body),
				),
			),
		),
	)
}

func sectionHeading(eyebrow, heading string, extra ...g.Node) g.Node {
	return h.Div(
		h.Class("mx-auto max-w-2xl lg:text-center"),
		h.H2(
			h.Class("text-base font-semibold leading-7 text-color-accent-base"),
			g.Text(eyebrow),
		),
		h.P(
			h.Class("mt-2 text-3xl font-bold tracking-tight text-color-high sm:text-4xl"),
			g.Text(heading),
		),
		g.Group(extra),
	)
}
