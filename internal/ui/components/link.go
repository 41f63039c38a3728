package components

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LinkNode is an internal navigation anchor. It implements Slottable so a
// Button can render it "as child".
type LinkNode struct {
	Href     string
	Class    string
	Children []g.Node
}

// Link creates an anchor pointing at href.
func Link(href string, children ...g.Node) *LinkNode {
	return &LinkNode{Href: href, Children: children}
}

// WithClass returns a copy of the link with class appended to its classes.
func (l *LinkNode) WithClass(class string) g.Node {
	return &LinkNode{
		Href:     l.Href,
		Class:    joinClasses(l.Class, class),
		Children: l.Children,
	}
}

// Render writes the anchor to w.
func (l *LinkNode) Render(w io.Writer) error {
	return h.A(
		g.If(l.Class != "", h.Class(l.Class)),
		h.Href(l.Href),
		g.Group(l.Children),
	).Render(w)
}
