package minihtml

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/lestrrat-go/minihtml/internal/debug"
	"github.com/lestrrat-go/minihtml/node"
	"github.com/lestrrat-go/minihtml/scanner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// parserCtx holds the state of a single parse. It is never shared
// between parses.
type parserCtx struct {
	context.Context
	scanner *scanner.Scanner
	lower   cases.Caser
	elemidx int
}

func (ctx *parserCtx) init(cctx context.Context, input string) {
	ctx.Context = cctx
	ctx.scanner = scanner.New(input)
	ctx.lower = cases.Lower(language.Und)
}

func (ctx *parserCtx) release() {
	ctx.Context = nil
	ctx.scanner = nil
}

func (ctx *parserCtx) error(err error) error {
	// If it's wrapped, just return as is
	if _, ok := err.(ErrParseError); ok {
		return err
	}

	return ErrParseError{
		Column:     ctx.scanner.Column(),
		Err:        err,
		Line:       ctx.scanner.CurrentLine(),
		LineNumber: ctx.scanner.LineNumber(),
		Location:   ctx.scanner.Pos(),
	}
}

func isASCIIAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isAttributeNameChar(c rune) bool {
	if unicode.IsSpace(c) || unicode.IsControl(c) {
		return false
	}
	switch c {
	case '"', '\'', '>', '/', '=', 0x0:
		return false
	}
	return true
}

func isUnquotedValueChar(c rune) bool {
	if unicode.IsSpace(c) {
		return false
	}
	switch c {
	case '"', '\'', '<', '>', '=', '`':
		return false
	}
	return true
}

// expect consumes c, or fails with errNotFound if the next character
// is something else.
func (ctx *parserCtx) expect(c rune, errNotFound error) error {
	got, err := ctx.scanner.Peek()
	if err != nil {
		return ctx.error(ErrPrematureEOF)
	}
	if got != c {
		return ctx.error(errNotFound)
	}
	_, _ = ctx.scanner.Advance()
	return nil
}

// parseDocument parses the whole input. A single top level node is
// returned as is, anything else is wrapped in an implicit <html> element.
func (ctx *parserCtx) parseDocument() (node.Node, error) {
	nodes, err := ctx.parseNodes()
	if err != nil {
		return nil, err
	}

	// parseNodes stops at "</" as well as at EOF. A stray closing tag at
	// the top level is left unconsumed.
	if err := ctx.scanner.Err(); err != nil {
		return nil, ctx.error(err)
	}
	if !ctx.scanner.EOF() {
		return nil, ctx.error(ErrDocumentEnd)
	}

	if len(nodes) == 1 {
		return nodes[0], nil
	}
	TraceEvent(ctx, "implicit root", slog.Int("children", len(nodes)))
	return node.NewElement("html", node.NewAttributes(), nodes, false), nil
}

// parseNodes collects siblings up to EOF or the next closing tag.
// Comments are dropped.
func (ctx *parserCtx) parseNodes() ([]node.Node, error) {
	var nodes []node.Node
	for {
		ctx.scanner.ConsumeWhitespace()
		if ctx.scanner.EOF() || ctx.scanner.StartsWith("</") {
			break
		}

		n, err := ctx.parseNode()
		if err != nil {
			return nil, err
		}
		if n.Type() == node.CommentNodeType {
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (ctx *parserCtx) parseNode() (node.Node, error) {
	switch {
	case ctx.scanner.StartsWith("<!"):
		return ctx.parseComment()
	case ctx.scanner.StartsWith("<"):
		return ctx.parseElement()
	default:
		return ctx.parseText(), nil
	}
}

func (ctx *parserCtx) parseText() node.Node {
	txt := ctx.scanner.ConsumeWhile(func(c rune) bool { return c != '<' })
	if debug.Enabled {
		debug.Printf("text %q", txt)
	}
	return node.NewText(txt)
}

// parseComment skips everything up to and including the next '>'.
// This covers both <!-- ... --> and declarations such as <!doctype html>,
// as long as they do not contain a '>' of their own.
func (ctx *parserCtx) parseComment() (node.Node, error) {
	ctx.scanner.ConsumeWhile(func(c rune) bool { return c != '>' })
	if err := ctx.expect('>', ErrGtRequired); err != nil {
		return nil, err
	}
	return node.NewComment(), nil
}

func (ctx *parserCtx) parseElement() (node.Node, error) {
	if debug.Enabled {
		ctx.elemidx++
		i := ctx.elemidx
		debug.Printf("START parseElement (%d)", i)
		defer debug.Printf("END   parseElement (%d)", i)
	}

	if err := ctx.expect('<', ErrLtRequired); err != nil {
		return nil, err
	}

	name, err := ctx.parseTagName()
	if err != nil {
		return nil, err
	}

	attrs, err := ctx.parseAttributes()
	if err != nil {
		return nil, err
	}
	ctx.scanner.ConsumeWhitespace()

	c, err := ctx.scanner.Advance()
	if err != nil {
		return nil, ctx.error(ErrPrematureEOF)
	}

	switch c {
	case '/':
		if err := ctx.expect('>', ErrGtRequired); err != nil {
			return nil, err
		}
		TraceEvent(ctx, "element", slog.String("name", name), slog.Bool("void", true))
		return node.NewElement(name, attrs, nil, true), nil
	case '>':
		children, err := ctx.parseNodes()
		if err != nil {
			return nil, err
		}
		if err := ctx.parseEndTag(name); err != nil {
			return nil, err
		}
		TraceEvent(ctx, "element", slog.String("name", name), slog.Int("children", len(children)))
		return node.NewElement(name, attrs, children, false), nil
	default:
		return nil, ctx.error(ErrInvalidTagEnd)
	}
}

// parseEndTag consumes "</name>" where name must match the element
// being closed, after lowercasing.
func (ctx *parserCtx) parseEndTag(name string) error {
	if err := ctx.expect('<', ErrLtRequired); err != nil {
		return err
	}
	if err := ctx.expect('/', ErrSlashRequired); err != nil {
		return err
	}

	closing := ctx.lower.String(ctx.scanner.ConsumeWhile(isASCIIAlnum))
	if closing != name {
		return ctx.error(ErrTagMismatch{Open: name, Close: closing})
	}
	return ctx.expect('>', ErrGtRequired)
}

func (ctx *parserCtx) parseTagName() (string, error) {
	name := ctx.scanner.ConsumeWhile(isASCIIAlnum)
	if name == "" {
		if ctx.scanner.EOF() {
			return "", ctx.error(ErrPrematureEOF)
		}
		return "", ctx.error(ErrNameRequired)
	}
	return ctx.lower.String(name), nil
}

func (ctx *parserCtx) parseAttributes() (*node.Attributes, error) {
	attrs := node.NewAttributes()
	for {
		ctx.scanner.ConsumeWhitespace()
		c, err := ctx.scanner.Peek()
		if err != nil {
			return nil, ctx.error(ErrPrematureEOF)
		}
		if c == '>' || c == '/' {
			break
		}

		name, value, err := ctx.parseAttribute()
		if err != nil {
			return nil, err
		}
		if debug.Enabled {
			debug.Printf("attribute %s = %q", name, value)
		}
		attrs.Set(name, value)
	}
	return attrs, nil
}

func (ctx *parserCtx) parseAttribute() (string, string, error) {
	name := ctx.scanner.ConsumeWhile(isAttributeNameChar)
	if name == "" {
		return "", "", ctx.error(ErrAttributeNameRequired)
	}

	var value string
	ctx.scanner.ConsumeWhitespace()
	if ctx.scanner.ConsumePrefix("=") {
		ctx.scanner.ConsumeWhitespace()
		v, err := ctx.parseString()
		if err != nil {
			return "", "", err
		}
		value = v
	}

	return ctx.lower.String(name), ctx.lower.String(value), nil
}

// parseString parses a quoted or unquoted attribute value.
func (ctx *parserCtx) parseString() (string, error) {
	q, err := ctx.scanner.Peek()
	if err != nil {
		return "", ctx.error(ErrPrematureEOF)
	}

	switch q {
	case '"', '\'':
		_, _ = ctx.scanner.Advance()
	default:
		return ctx.scanner.ConsumeWhile(isUnquotedValueChar), nil
	}

	v := ctx.scanner.ConsumeWhile(func(c rune) bool { return c != q })
	if !ctx.scanner.ConsumePrefix(string(q)) {
		return "", ctx.error(ErrStringNotClosed)
	}
	return v, nil
}
