package markdown

import "strconv"

// Token is a lexical unit produced by Lex.
type Token struct {
	Kind  TokenKind
	Level HeadingLevel
	Text  string
	Label string
}

// TokenKind tags the Markdown construct a Token represents.
type TokenKind uint8

const (
	// TokenText is a trimmed run of plain characters.
	TokenText TokenKind = iota
	// TokenHeading is a heading line. Level holds its rank.
	TokenHeading
	// TokenBlockQuote is the remainder of a line introduced by '>'.
	TokenBlockQuote
	// TokenListItem is the body of a single '-' or '+' list line.
	TokenListItem
	// TokenBold is the content of a complete ** pair.
	TokenBold
	// TokenItalic is the content of a complete __ pair.
	TokenItalic
	// TokenNoteDefinition is a [^label]: content line.
	TokenNoteDefinition
	// TokenNoteReference is an inline [^label] citation.
	TokenNoteReference
)

var tokenKindNames = [...]string{
	TokenText:           "Text",
	TokenHeading:        "Heading",
	TokenBlockQuote:     "BlockQuote",
	TokenListItem:       "ListItem",
	TokenBold:           "Bold",
	TokenItalic:         "Italic",
	TokenNoteDefinition: "NoteDefinition",
	TokenNoteReference:  "NoteReference",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// HeadingLevel is the rank of a heading, H1 through H6.
type HeadingLevel uint8

const (
	H1 HeadingLevel = iota + 1
	H2
	H3
	H4
	H5
	H6
)

func headingLevel(hashes int) HeadingLevel {
	switch {
	case hashes <= 1:
		return H1
	case hashes >= 6:
		return H6
	default:
		return HeadingLevel(hashes)
	}
}

func (l HeadingLevel) String() string {
	return "h" + strconv.Itoa(int(l))
}

// HeadingToken returns a heading token.
func HeadingToken(level HeadingLevel, text string) Token {
	return Token{Kind: TokenHeading, Level: level, Text: text}
}

// TextToken returns a plain text token.
func TextToken(text string) Token { return Token{Kind: TokenText, Text: text} }

// BlockQuoteToken returns a block quote token.
func BlockQuoteToken(text string) Token { return Token{Kind: TokenBlockQuote, Text: text} }

// ListItemToken returns a list item token.
func ListItemToken(text string) Token { return Token{Kind: TokenListItem, Text: text} }

// BoldToken returns a bold span token.
func BoldToken(text string) Token { return Token{Kind: TokenBold, Text: text} }

// ItalicToken returns an italic span token.
func ItalicToken(text string) Token { return Token{Kind: TokenItalic, Text: text} }

// NoteDefinitionToken returns a footnote definition token.
func NoteDefinitionToken(label, content string) Token {
	return Token{Kind: TokenNoteDefinition, Label: label, Text: content}
}

// NoteReferenceToken returns a footnote reference token.
func NoteReferenceToken(label string) Token {
	return Token{Kind: TokenNoteReference, Label: label}
}
