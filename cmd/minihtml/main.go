package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/minihtml"
	"github.com/lestrrat-go/minihtml/encoding"
	"github.com/lestrrat-go/minihtml/htmlconv"
	"github.com/lestrrat-go/minihtml/internal/cliutil"
	"github.com/lestrrat-go/minihtml/node"
	"github.com/lestrrat-go/minihtml/render"
	"github.com/lestrrat-go/minihtml/s11n"
	"github.com/lestrrat-go/minihtml/token"
)

// parsed when no files are given and stdin is a terminal
const sampleDocument = "<!doctype html><HTML><hEad iD=\"head\" class=\"TESting\" ></heaD><body ft-expand><img src='img.png' />Some body\n-5.98<!-- comment! --></body></html>"

type cmdopts struct {
	Encoding string `long:"encoding" value-name:"NAME" description:"decode input from the named charset"`
	HTML     bool   `long:"html" description:"render the tree as HTML"`
	Lenient  bool   `long:"lenient" description:"parse with the error tolerant HTML5 parser"`
	Tokens   bool   `long:"tokens" description:"print the flat token stream instead of a tree"`
	Trace    bool   `long:"trace" description:"write parser trace events to stderr"`
	Version  bool   `long:"version" description:"display the version of the library"`
}

func main() {
	os.Exit(_main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "minihtml: using minihtml version %s\n", minihtml.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : minihtml [options] [files ...]
	Parse the files (or standard input) and output the resulting tree
	--encoding NAME : decode input from the named charset
	--html          : render the tree as HTML
	--lenient       : parse with the error tolerant HTML5 parser
	--tokens        : print the flat token stream instead of a tree
	--trace         : write parser trace events to stderr
	--version       : display the version of the library
`)
}

type source struct {
	name string
	open func() (io.ReadCloser, error)
}

func _main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.NewParser(&opts, flags.PassDoubleDash).ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	var sources []source
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			sources = append(sources, source{name: f, open: func() (io.ReadCloser, error) { return os.Open(f) }})
		}
	case !isTerminal(stdin):
		sources = append(sources, source{name: "-", open: func() (io.ReadCloser, error) { return io.NopCloser(stdin), nil }})
	default:
		sources = append(sources, source{name: "sample", open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(sampleDocument)), nil
		}})
	}

	ctx := context.Background()
	if opts.Trace {
		ctx = minihtml.WithTraceLogger(ctx, slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p := minihtml.NewParser()
	for _, src := range sources {
		input, err := readSource(src, opts.Encoding)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", src.name, err)
			return 1
		}

		if opts.Tokens {
			for tok := range token.Tokenize(input) {
				fmt.Fprintln(stdout, tok)
			}
			continue
		}

		var root node.Node
		if opts.Lenient {
			root, err = htmlconv.Parse(strings.NewReader(input))
		} else {
			root, err = p.Parse(ctx, input)
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", src.name, err)
			return 1
		}

		if opts.HTML {
			err = render.HTML(stdout, root)
			if err == nil {
				_, err = io.WriteString(stdout, "\n")
			}
		} else {
			d := s11n.Dumper{}
			err = d.DumpNode(stdout, root)
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
	}

	return 0
}

func readSource(src source, enc string) (string, error) {
	in, err := src.open()
	if err != nil {
		return "", err
	}
	defer in.Close()

	buf, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	if enc == "" {
		return string(buf), nil
	}
	return encoding.Decode(enc, buf)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && cliutil.IsTty(f.Fd())
}
