// Package minihtml parses HTML-like markup into a tree of nodes and
// serializes such trees back into text.
//
// The parser only cares about the syntactic shape of the input: tags,
// attributes, self-closing (void) elements and text. Comments and
// <! ... > declarations are skipped, entities are not decoded, and no
// HTML content model is applied. Tag and attribute names, as well as
// attribute values, are lowercased. Empty tag names such as "<></>" are
// rejected with ErrNameRequired.
package minihtml

import (
	"bytes"
	"context"

	"github.com/lestrrat-go/minihtml/internal/pool"
	"github.com/lestrrat-go/minihtml/node"
	"github.com/lestrrat-go/minihtml/s11n"
)

const Version = "v0.1.0"

// Parse parses input with a default Parser.
func Parse(input string) (node.Node, error) {
	return NewParser().Parse(context.Background(), input)
}

// Serialize renders n using s11n.Dumper, one tag or text run per line.
func Serialize(n node.Node) (string, error) {
	bs := pool.ByteSlice()
	b := bs.Get()
	defer func() { bs.Put(b) }()

	buf := bytes.NewBuffer(b)
	var d s11n.Dumper
	if err := d.DumpNode(buf, n); err != nil {
		return "", err
	}
	b = buf.Bytes()
	return buf.String(), nil
}
