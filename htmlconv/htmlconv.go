// Package htmlconv builds node trees out of golang.org/x/net/html
// parse trees. This gives a lenient alternative to the strict core
// parser: x/net/html recovers from any input, and the result is
// normalized to the same rules the core parser applies.
package htmlconv

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lestrrat-go/minihtml/node"
)

var ErrNilNode = errors.New("nil html node")

// HTML elements that never have content. x/net/html does not record
// whether a tag was self-closed, so these are the elements marked void.
var voidElements = map[atom.Atom]struct{}{
	atom.Area:   {},
	atom.Base:   {},
	atom.Br:     {},
	atom.Col:    {},
	atom.Embed:  {},
	atom.Hr:     {},
	atom.Img:    {},
	atom.Input:  {},
	atom.Link:   {},
	atom.Meta:   {},
	atom.Source: {},
	atom.Track:  {},
	atom.Wbr:    {},
}

// Parse reads HTML from r with x/net/html and converts the result.
func Parse(r io.Reader) (node.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTML(doc)
}

type converter struct {
	lower cases.Caser
}

// FromHTML converts n and its descendants. Comments, doctypes and
// white space only text are dropped, leading white space of text runs
// is trimmed, and names and attribute values are lowercased. When n is
// a document (or otherwise yields a number of top level nodes other
// than one) the nodes are wrapped in an <html> element.
func FromHTML(n *html.Node) (node.Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	c := &converter{lower: cases.Lower(language.Und)}
	var nodes []node.Node
	if n.Type == html.DocumentNode {
		nodes = c.convertChildren(n)
	} else if cn := c.convert(n); cn != nil {
		nodes = append(nodes, cn)
	}

	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return node.NewElement("html", node.NewAttributes(), nodes, false), nil
}

func (c *converter) convertChildren(n *html.Node) []node.Node {
	var nodes []node.Node
	for chld := n.FirstChild; chld != nil; chld = chld.NextSibling {
		if cn := c.convert(chld); cn != nil {
			nodes = append(nodes, cn)
		}
	}
	return nodes
}

func (c *converter) convert(n *html.Node) node.Node {
	switch n.Type {
	case html.TextNode:
		txt := strings.TrimLeftFunc(n.Data, unicode.IsSpace)
		if txt == "" {
			return nil
		}
		return node.NewText(txt)
	case html.ElementNode:
		attrs := node.NewAttributes()
		for _, attr := range n.Attr {
			name := attr.Key
			if attr.Namespace != "" {
				name = attr.Namespace + ":" + name
			}
			attrs.Set(c.lower.String(name), c.lower.String(attr.Val))
		}

		children := c.convertChildren(n)
		_, void := voidElements[n.DataAtom]
		void = void && len(children) == 0
		return node.NewElement(c.lower.String(n.Data), attrs, children, void)
	default:
		// comments, doctypes, errors and raw nodes
		return nil
	}
}
