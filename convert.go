package markdown

// Convert renders a Markdown document to HTML. It is total: every input,
// including empty or malformed text, yields some HTML. Convert holds no
// shared state and is safe for concurrent use.
func Convert(input string) string {
	return RenderHTML(Parse(Lex(input)))
}
