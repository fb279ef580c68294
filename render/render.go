// Package render turns node trees into HTML through gomponents. Unlike
// the s11n shape dump, text and attribute values are escaped.
package render

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/lestrrat-go/minihtml/node"
)

// Lower converts n into a gomponents node. Comments lower to nil.
func Lower(n node.Node) g.Node {
	switch n := n.(type) {
	case *node.Text:
		return g.Text(n.Data())
	case *node.Element:
		return lowerElement(n)
	default:
		return nil
	}
}

func lowerElement(e *node.Element) g.Node {
	children := make([]g.Node, 0, e.Attributes().Len()+len(e.Children()))
	for name, value := range e.Attributes().All() {
		if value == "" {
			children = append(children, g.Attr(name))
			continue
		}
		children = append(children, g.Attr(name, value))
	}
	for _, child := range e.Children() {
		if l := Lower(child); l != nil {
			children = append(children, l)
		}
	}
	return g.El(e.Name(), children...)
}

// HTML writes n to w as HTML.
func HTML(w io.Writer, n node.Node) error {
	l := Lower(n)
	if l == nil {
		return nil
	}
	return l.Render(w)
}
