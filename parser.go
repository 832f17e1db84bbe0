package markdown

import (
	"unicode"
	"unicode/utf8"
)

// parser groups inline tokens into paragraphs. Its span toggles are
// independent from the lexer's: they flip on every Bold or Italic token and
// nothing else, so they survive paragraph boundaries.
type parser struct {
	result    []Node
	paragraph []Node
	inBold    bool
	inItalic  bool
	// index into paragraph of the span that text folds into, -1 when none
	fold int
}

// Parse builds the document tree from tokens. Block tokens end the current
// paragraph and are placed at top level; everything else is collected into
// paragraphs.
func Parse(tokens []Token) []Node {
	p := parser{fold: -1}
	for _, tok := range tokens {
		p.token(tok)
	}
	p.flush()
	return p.result
}

func (p *parser) token(tok Token) {
	switch tok.Kind {
	case TokenHeading:
		p.block(HeadingNode(tok.Level, tok.Text))
	case TokenBlockQuote:
		p.block(BlockQuoteNode(tok.Text))
	case TokenListItem:
		p.block(ListItemNode(tok.Text))
	case TokenNoteDefinition:
		p.block(NoteDefinitionNode(tok.Label, tok.Text))
	case TokenBold:
		p.inBold = p.toggle(p.inBold, BoldNode(tok.Text))
	case TokenItalic:
		p.inItalic = p.toggle(p.inItalic, ItalicNode(tok.Text))
	case TokenNoteReference:
		p.paragraph = append(p.paragraph, NoteReferenceNode(tok.Label))
	default:
		p.text(tok.Text)
	}
}

func (p *parser) block(n Node) {
	p.flush()
	p.result = append(p.result, n)
}

// toggle opens span when open is false. Otherwise the span text is kept as
// plain text and the span closes. It reports the new toggle state.
func (p *parser) toggle(open bool, span Node) bool {
	if !open {
		p.paragraph = append(p.paragraph, span)
		p.fold = len(p.paragraph) - 1
		return true
	}
	p.paragraph = append(p.paragraph, TextNode(span.Text))
	return false
}

// text folds into the open span while it is still the last node of the
// paragraph. Anything appended after the span ends folding.
func (p *parser) text(text string) {
	if !p.inBold && !p.inItalic || p.fold < 0 || p.fold != len(p.paragraph)-1 {
		p.paragraph = append(p.paragraph, TextNode(text))
		return
	}
	span := &p.paragraph[p.fold]
	span.Text = joinText(span.Text, text)
}

// joinText restores the word break the lexer trimmed away. Punctuation
// attaches without one.
func joinText(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	if r, _ := utf8.DecodeRuneInString(right); unicode.IsPunct(r) {
		return left + right
	}
	return left + " " + right
}

func (p *parser) flush() {
	if len(p.paragraph) > 0 {
		p.result = append(p.result, Paragraph(p.paragraph...))
		p.paragraph = nil
	}
	p.fold = -1
}
