package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the site footer. It takes no parameters so every page shows
// the same closing band.
func Footer() g.Node {
	return h.Footer(
		h.Class("border-t border-color-low/40 bg-color-base"),
		h.Div(
			h.Class("mx-auto max-w-7xl px-6 py-12 lg:px-8 md:flex md:items-center md:justify-between"),
			h.P(
				h.Class("text-sm leading-6 font-semibold text-color-high"),
				g.Text("The Anatomy of Excellence"),
			),
			h.P(
				h.Class("mt-4 text-xs leading-5 text-color-low md:mt-0"),
				g.Text("A living document on the craft of enduring software."),
			),
		),
	)
}
