package markdown

import (
	"io"
	"strconv"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
)

const dumpIndent = 2

// DumpTokens writes one line per token. Lines wider than width display
// columns are cut with an ellipsis; width <= 0 disables cutting.
func DumpTokens(w io.Writer, tokens []Token, width int) error {
	for _, tok := range tokens {
		if err := writeDumpLine(w, describeToken(tok), width); err != nil {
			return err
		}
	}
	return nil
}

// DumpAST writes one line per node, indenting paragraph children.
func DumpAST(w io.Writer, nodes []Node, width int) error {
	return dumpNodes(w, nodes, 0, width)
}

func dumpNodes(w io.Writer, nodes []Node, depth, width int) error {
	for _, n := range nodes {
		line := indent.String(describeNode(n), uint(depth*dumpIndent))
		if err := writeDumpLine(w, line, width); err != nil {
			return err
		}
		if n.Kind == NodeParagraph {
			if err := dumpNodes(w, n.Children, depth+1, width); err != nil {
				return err
			}
		}
	}
	return nil
}

func describeToken(tok Token) string {
	return describe(tok.Kind.String(), tok.Level, tok.Label, tok.Text,
		tok.Kind == TokenHeading, tok.Kind == TokenNoteReference)
}

func describeNode(n Node) string {
	if n.Kind == NodeParagraph {
		return n.Kind.String()
	}
	return describe(n.Kind.String(), n.Level, n.Label, n.Text,
		n.Kind == NodeHeading, n.Kind == NodeNoteReference)
}

// describe formats Heading(h2) "text", NoteDefinition[1] "text",
// NoteReference[1] and Kind "text".
func describe(kind string, level HeadingLevel, label, text string, heading, labelOnly bool) string {
	out := kind
	if heading {
		out += "(" + level.String() + ")"
	}
	if label != "" {
		out += "[" + label + "]"
	}
	if labelOnly {
		return out
	}
	return out + " " + strconv.Quote(text)
}

func writeDumpLine(w io.Writer, line string, width int) error {
	_, err := io.WriteString(w, truncateWithEllipsis(line, width)+"\n")
	return err
}

func truncateWithEllipsis(text string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}
