package markdown

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestConvertDocuments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "empty", src: "", want: ""},
		{name: "heading", src: "## Heading 2", want: "<h2>Heading 2</h2>"},
		{name: "bold", src: "**bold**", want: "<p><b>bold</b></p>"},
		{name: "unterminated bold is literal text", src: "**bold", want: "<p>bold</p>"},
		{name: "italic", src: "__italic__", want: "<p><i>italic</i></p>"},
		{name: "blockquote", src: "> quoted text", want: "<blockquote>quoted text</blockquote>"},
		{
			name: "list",
			src:  "- one\n- two",
			want: "<ul><li>one</li><li>two</li></ul>",
		},
		{
			name: "footnote",
			src:  "[^2]: explanation",
			want: "<p id='note-2'><sup>2</sup>: explanation <a href='#ref-2'>&#8617;</a></p>",
		},
		{
			name: "bold across lines",
			src:  "**two\nlines**",
			want: "<p>two<b>lines</b></p>",
		},
		{
			name: "document",
			src:  "## Heading 2\n\n> This is a blockquote.\n\nMore **bold** and __italic__ text.\n\n- List1\n\n- List2\n",
			want: "<h2>Heading 2</h2><blockquote>This is a blockquote.</blockquote>" +
				"<p>More<b>bold and</b><i>italic text.</i></p>" +
				"<ul><li>List1</li><li>List2</li></ul>",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Convert(tc.src); got != tc.want {
				t.Fatalf("Convert(%q):\n got %q\nwant %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestConvertStages(t *testing.T) {
	tokens := Lex("> quoted text")
	if want := []Token{BlockQuoteToken("quoted text")}; !reflect.DeepEqual(tokens, want) {
		t.Fatalf("tokens: got %#v want %#v", tokens, want)
	}
	nodes := Parse(tokens)
	if want := []Node{BlockQuoteNode("quoted text")}; !reflect.DeepEqual(nodes, want) {
		t.Fatalf("nodes: got %#v want %#v", nodes, want)
	}
	if got := RenderHTML(nodes); got != "<blockquote>quoted text</blockquote>" {
		t.Fatalf("html: got %q", got)
	}
}

func TestConvertIsNotIdempotent(t *testing.T) {
	src := "# Title\n\n- a\n- b\n"
	once := Convert(src)
	twice := Convert(once)
	if once == twice {
		t.Fatalf("did not expect HTML to round-trip through Convert: %q", once)
	}
	if want := "<h1>Title</h1><ul><li>a</li><li>b</li></ul>"; once != want {
		t.Fatalf("first pass: got %q want %q", once, want)
	}
}

func TestConvertTerminatesOnHostileInput(t *testing.T) {
	inputs := []string{
		strings.Repeat("*", 10001),
		strings.Repeat("_", 10001),
		strings.Repeat("**_", 3000),
		strings.Repeat("#", 500),
		strings.Repeat("- \n", 2000),
		strings.Repeat("[^", 2000),
		strings.Repeat("[^x]: ", 500),
		strings.Repeat(">\n", 1000),
		"\x00\xff\xfe**\r\n__",
	}
	for _, src := range inputs {
		_ = Convert(src)
	}
}

func TestConvertConcurrent(t *testing.T) {
	inputs := map[string]string{
		"**open\nclosed**":    "<p>open<b>closed</b></p>",
		"__never closed":      "<p>never closed</p>",
		"# H\n- a\n- b":       "<h1>H</h1><ul><li>a</li><li>b</li></ul>",
		"text[^1]\n[^1]: why": "<p>text<sup id='ref-1'><a href='#note-1'>[1]</a></sup></p><p id='note-1'><sup>1</sup>: why <a href='#ref-1'>&#8617;</a></p>",
	}
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 16; i++ {
		for src, want := range inputs {
			src, want := src, want
			wg.Add(1)
			go func() {
				defer wg.Done()
				if got := Convert(src); got != want {
					errs <- "Convert(" + src + ") = " + got
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}

func FuzzConvert(f *testing.F) {
	for _, seed := range []string{
		"",
		"## Heading 2",
		"**bold**",
		"**bold",
		"- a\n- b",
		"> q",
		"[^2]: explanation",
		"a[^1] b",
		"__x\n\ny__",
		"**a\n[^1]: x\nb**",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		out := Convert(src)
		if strings.Count(out, "<ul>") != strings.Count(out, "</ul>") {
			t.Fatalf("unbalanced list wrappers for %q: %q", src, out)
		}
	})
}

func BenchmarkConvert(b *testing.B) {
	src := strings.Repeat("# Title\n\nSome **bold** and __italic__ text[^1].\n\n- one\n- two\n\n> quote\n\n[^1]: note\n", 64)
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		_ = Convert(src)
	}
}

func TestConvertAllocations(t *testing.T) {
	src := strings.Repeat("Some **bold** text.\n", 32)
	allocs := testing.AllocsPerRun(100, func() {
		_ = Convert(src)
	})
	if allocs > 600 {
		t.Fatalf("too many allocations per Convert: got %.2f", allocs)
	}
}

func TestConvertKeepsSourceOrder(t *testing.T) {
	tests := map[string]string{
		"__i__ **b1** **b2** tail": "<p><i>i</i><b>b1</b>b2tail</p>",
		"**a** x[^1] b":            "<p><b>a x</b><sup id='ref-1'><a href='#note-1'>[1]</a></sup>b</p>",
		"**a**\n# h\n**b**":        "<p><b>a</b></p><h1>h</h1><p>b</p>",
	}
	for src, want := range tests {
		if got := Convert(src); got != want {
			t.Fatalf("Convert(%q):\n got %q\nwant %q", src, got, want)
		}
	}
}
