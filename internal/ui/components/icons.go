package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// IconName identifies a glyph from the icon set.
type IconName string

// Icons used by the site. Glyph outlines follow the lucide icon set.
const (
	IconArrowRight IconName = "arrow-right"
	IconFeather    IconName = "feather"
	IconScale      IconName = "scale"
	IconGitMerge   IconName = "git-merge"
)

var iconGlyphs = map[IconName]string{
	IconArrowRight: `<path d="M5 12h14"></path><path d="m12 5 7 7-7 7"></path>`,
	IconFeather: `<path d="M12.67 19a2 2 0 0 0 1.416-.588l6.154-6.172a6 6 0 0 0-8.49-8.49L5.586 9.914A2 2 0 0 0 5 11.328V18a1 1 0 0 0 1 1z"></path>` +
		`<path d="M16 8 2 22"></path><path d="M17.5 15H9"></path>`,
	IconScale: `<path d="m16 16 3-8 3 8c-.87.65-1.92 1-3 1s-2.13-.35-3-1Z"></path>` +
		`<path d="m2 16 3-8 3 8c-.87.65-1.92 1-3 1s-2.13-.35-3-1Z"></path>` +
		`<path d="M7 21h10"></path><path d="M12 3v18"></path><path d="M3 7h2c2 0 5-1 7-2 2 1 5 2 7 2h2"></path>`,
	IconGitMerge: `<circle cx="18" cy="18" r="3"></circle><circle cx="6" cy="6" r="3"></circle>` +
		`<path d="M6 21V9a9 9 0 0 0 9 9"></path>`,
}

// HasIcon reports whether name is part of the icon set.
func HasIcon(name IconName) bool {
	_, ok := iconGlyphs[name]
	return ok
}

// Icon renders a decorative inline SVG glyph. Icons carry no meaning and are
// hidden from assistive technology. An unknown name renders nothing.
func Icon(name IconName, class string) g.Node {
	glyph, ok := iconGlyphs[name]
	if !ok {
		return nil
	}

	return h.SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		h.Class(joinClasses("icon", "icon-"+string(name), class)),
		h.Aria("hidden", "true"),
		g.Raw(glyph),
	)
}
