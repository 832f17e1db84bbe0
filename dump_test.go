package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestDumpTokens(t *testing.T) {
	var out bytes.Buffer
	tokens := Lex("## Heading 2\nSee[^1] **this**\n[^1]: why")
	if err := DumpTokens(&out, tokens, 0); err != nil {
		t.Fatalf("dump tokens: %v", err)
	}
	want := strings.Join([]string{
		`Heading(h2) "Heading 2"`,
		`Text "See"`,
		`NoteReference[1]`,
		`Bold "this"`,
		`NoteDefinition[1] "why"`,
	}, "\n") + "\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected dump:\n got %q\nwant %q", got, want)
	}
}

func TestDumpAST(t *testing.T) {
	var out bytes.Buffer
	nodes := Parse(Lex("# Title\nsome **bold**\n- item"))
	if err := DumpAST(&out, nodes, 0); err != nil {
		t.Fatalf("dump ast: %v", err)
	}
	want := strings.Join([]string{
		`Heading(h1) "Title"`,
		`Paragraph`,
		`  Text "some"`,
		`  Bold "bold"`,
		`ListItem "item"`,
	}, "\n") + "\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected dump:\n got %q\nwant %q", got, want)
	}
}

func TestDumpTruncatesToWidth(t *testing.T) {
	var out bytes.Buffer
	long := strings.Repeat("word ", 40)
	nodes := Parse(Lex(long + "\n> " + long))
	width := 24
	if err := DumpAST(&out, nodes, width); err != nil {
		t.Fatalf("dump ast: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out.String())
	}
	for _, line := range lines[1:] {
		if w := ansi.PrintableRuneWidth(line); w > width {
			t.Fatalf("line wider than %d (%d): %q", width, w, line)
		}
		if !strings.HasSuffix(line, "…") {
			t.Fatalf("expected ellipsis on %q", line)
		}
	}
	if lines[0] != "Paragraph" {
		t.Fatalf("short line changed: %q", lines[0])
	}
}
