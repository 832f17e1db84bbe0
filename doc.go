// Package markdown converts a small subset of Markdown to HTML.
//
// Conversion runs in three stages: Lex turns text into a flat token
// stream, Parse groups tokens into a shallow tree of paragraphs and block
// nodes, and RenderHTML writes that tree as HTML. Convert chains all three.
//
// Supported constructs:
//   - ATX headings (# through ######)
//   - > block quotes, one line each
//   - - and + list items, grouped into a single <ul> per run
//   - **bold** and __italic__ spans, which may cross line breaks
//   - footnote definitions ([^1]: text) and references ([^1])
//
// The pipeline never fails and does not escape HTML in the input.
//
// Example:
//
//	html := markdown.Convert("## Hello\n\nMarkdown in, **HTML** out.\n")
//	fmt.Println(html)
//
// Render and HTTPRender read documents from an io.Reader or an http(s)
// URL and accept RenderOptions such as front matter stripping and full
// document output.
package markdown
