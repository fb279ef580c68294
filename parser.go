package minihtml

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/minihtml/internal/debug"
	"github.com/lestrrat-go/minihtml/node"
)

// Parser builds node trees out of markup. A Parser holds no per-parse
// state, so a single instance may be used from multiple goroutines.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse parses input and returns the root of the resulting tree.
// If ctx carries a trace logger (see WithTraceLogger), parse events
// are reported to it. On failure the returned error is an
// ErrParseError and no partial tree is returned.
func (p *Parser) Parse(ctx context.Context, input string) (node.Node, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := StartSpan(ctx, "minihtml.Parse")
	defer span.End()

	pctx := &parserCtx{}
	pctx.init(ctx, input)
	defer pctx.release()

	root, err := pctx.parseDocument()
	if err != nil {
		TraceError(ctx, err, "parse failed", slog.Int("offset", pctx.scanner.Pos()))
		return nil, err
	}
	if debug.Enabled {
		debug.Dump(root)
	}
	return root, nil
}
