// Package components provides the reusable markup building blocks shared by
// the UI pages: buttons, links, icons and the site footer.
package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonSize selects the padding and text scale of a button.
type ButtonSize string

// Supported button sizes.
const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeLarge   ButtonSize = "lg"
)

const buttonBaseClass = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md font-medium " +
	"bg-color-accent-base text-color-on-accent shadow transition-colors " +
	"hover:bg-color-accent-high focus-visible:outline-none focus-visible:ring-2"

var buttonSizeClasses = map[ButtonSize]string{
	ButtonSizeDefault: "h-9 px-4 py-2 text-sm",
	ButtonSizeSmall:   "h-8 px-3 text-xs",
	ButtonSizeLarge:   "h-10 px-8 text-base",
}

// ButtonProps configures a Button.
type ButtonProps struct {
	Size ButtonSize
	// AsChild hands the button styling to a single Slottable child (such as
	// a Link) instead of wrapping the children in a <button> element.
	AsChild bool
	Class   string
}

// Slottable is a node that can take over the classes of its parent
// component when that parent renders "as child".
type Slottable interface {
	g.Node
	WithClass(class string) g.Node
}

// Button renders a styled button. With AsChild and exactly one Slottable
// child, the child is rendered in place of the <button> with the button
// classes merged into its own.
func Button(props ButtonProps, children ...g.Node) g.Node {
	class := ButtonClass(props.Size, props.Class)

	if props.AsChild && len(children) == 1 {
		if slot, ok := children[0].(Slottable); ok {
			return slot.WithClass(class)
		}
	}

	return h.Button(
		h.Type("button"),
		h.Class(class),
		g.Group(children),
	)
}

// ButtonClass returns the class list for a button of the given size.
// Unknown sizes fall back to the default size.
func ButtonClass(size ButtonSize, extra string) string {
	sizeClass, ok := buttonSizeClasses[size]
	if !ok {
		sizeClass = buttonSizeClasses[ButtonSizeDefault]
	}
	return joinClasses(buttonBaseClass, sizeClass, extra)
}

func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
