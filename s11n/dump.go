// Package s11n writes node trees back out as text.
package s11n

import (
	"errors"
	"io"

	"github.com/lestrrat-go/minihtml/node"
)

// CommentMarker is written in place of comment nodes.
const CommentMarker = "<!---->"

var ErrUnknownNode = errors.New("unknown node type")

// Dumper writes nodes in a line oriented form: every start tag, end
// tag and text run is followed by a newline. Nothing is escaped, so the
// output reproduces the shape of the tree rather than a safe HTML
// document.
type Dumper struct{}

type errWriter struct {
	out io.Writer
	err error
}

func (w *errWriter) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func (d *Dumper) DumpNode(out io.Writer, n node.Node) error {
	w := &errWriter{out: out}
	if err := d.dumpNode(w, n); err != nil {
		return err
	}
	return w.err
}

func (d *Dumper) dumpNode(w *errWriter, n node.Node) error {
	switch n := n.(type) {
	case *node.Text:
		w.writeString(n.Data())
		w.writeString("\n")
		return nil
	case *node.Comment:
		w.writeString(CommentMarker)
		w.writeString("\n")
		return nil
	case *node.Element:
		return d.dumpElement(w, n)
	case nil:
		return node.ErrNilNode
	default:
		return ErrUnknownNode
	}
}

func (d *Dumper) dumpElement(w *errWriter, e *node.Element) error {
	w.writeString("<")
	w.writeString(e.Name())
	for name, value := range e.Attributes().All() {
		w.writeString(" ")
		w.writeString(name)
		if value != "" {
			w.writeString(`="`)
			w.writeString(value)
			w.writeString(`"`)
		}
	}

	if e.IsVoid() {
		w.writeString(" />\n")
		return w.err
	}
	w.writeString(">\n")

	for _, child := range e.Children() {
		if err := d.dumpNode(w, child); err != nil {
			return err
		}
		if w.err != nil {
			return w.err
		}
	}

	w.writeString("</")
	w.writeString(e.Name())
	w.writeString(">\n")
	return w.err
}
