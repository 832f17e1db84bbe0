package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	markdown "github.com/yud0uhu/markdown-parser"
	"pkt.systems/version"
)

const modulePath = "github.com/yud0uhu/markdown-parser"

func init() {
	version.SetDefaultModule(modulePath)
}

type dumpMode uint8

const (
	dumpHTML dumpMode = iota
	dumpTokens
	dumpAST
)

type options struct {
	outPath     string
	dump        string
	document    bool
	frontMatter bool
	validate    bool
	width       int
	stats       bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdhtml", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&opts.dump, "dump", "html", "Output stage: html|tokens|ast")
	flags.BoolVarP(&opts.document, "document", "d", false, "Wrap HTML in a complete document")
	flags.BoolVar(&opts.frontMatter, "front-matter", false, "Strip leading YAML, TOML or JSON front matter")
	flags.BoolVar(&opts.validate, "validate", false, "Reject invalid UTF-8 and binary input")
	flags.IntVarP(&opts.width, "width", "w", 0, "Dump line width (0 uses terminal width if available)")
	flags.BoolVar(&opts.stats, "stats", false, "Report input and output sizes on stderr")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdhtml [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	mode, err := parseDumpMode(opts.dump)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --dump %q: %v\n", opts.dump, err)
		return 2
	}
	if opts.document && mode != dumpHTML {
		fmt.Fprintln(stderr, "--document only applies to html output")
		return 2
	}

	reader, closer, err := openInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	start := time.Now()
	in := &countingReader{r: reader}
	out := &countingWriter{w: writer}
	if err := convert(in, out, mode, opts, resolveWidth(opts.width, writer)); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if opts.stats {
		fmt.Fprintf(stderr, "read %s, wrote %s in %s\n",
			humanize.Bytes(uint64(in.n)), humanize.Bytes(uint64(out.n)),
			time.Since(start).Round(time.Microsecond))
	}
	return 0
}

func convert(r io.Reader, w io.Writer, mode dumpMode, opts options, width int) error {
	renderOpts := []markdown.RenderOption{
		markdown.WithValidation(opts.validate),
		markdown.WithFrontMatter(opts.frontMatter),
		markdown.WithDocument(opts.document),
	}
	if mode == dumpHTML {
		return markdown.Render(markdown.RenderRequest{
			Reader:  r,
			Writer:  w,
			Options: renderOpts,
		})
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	_, src, err = markdown.PrepareSource(src, renderOpts...)
	if err != nil {
		return fmt.Errorf("prepare input: %w", err)
	}
	tokens := markdown.Lex(string(src))
	if mode == dumpTokens {
		return markdown.DumpTokens(w, tokens, width)
	}
	return markdown.DumpAST(w, markdown.Parse(tokens), width)
}

func parseDumpMode(value string) (dumpMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "html":
		return dumpHTML, nil
	case "tokens", "lex":
		return dumpTokens, nil
	case "ast", "parse":
		return dumpAST, nil
	default:
		return dumpHTML, fmt.Errorf("expected html|tokens|ast")
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, 0)
}

// terminalWidth reports the width of w when it is a terminal, then
// $COLUMNS, then fallback.
func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
