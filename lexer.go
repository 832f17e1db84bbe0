package markdown

import (
	"strings"
	"sync"
)

const notePrefix = "[^"

var lexerPool = sync.Pool{
	New: func() any {
		return &lexer{}
	},
}

// lexer holds the scan state of one Lex call. The span flags survive line
// boundaries so a ** opened on one line can close on a later one; the
// buffer does not, it is flushed as text at every line end.
type lexer struct {
	tokens   []Token
	buf      []byte
	inBold   bool
	inItalic bool

	bufArr [256]byte
}

func (lx *lexer) reset() {
	lx.tokens = nil
	lx.buf = lx.bufArr[:0]
	lx.inBold = false
	lx.inItalic = false
}

// Lex splits input into tokens. It never fails; empty input yields no
// tokens.
func Lex(input string) []Token {
	lx := lexerPool.Get().(*lexer)
	lx.reset()
	lines := splitLines(input)
	for i := 0; i < len(lines); {
		i = lx.lexLine(lines, i)
	}
	tokens := lx.tokens
	lx.reset()
	lexerPool.Put(lx)
	return tokens
}

func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// lexLine scans lines[i] and returns the index of the next line to scan.
// Lists consume more than one line.
func (lx *lexer) lexLine(lines []string, i int) int {
	line := lines[i]
	if label, content, ok := parseNoteDefinition(line); ok {
		lx.emit(NoteDefinitionToken(label, content))
		return i + 1
	}
	for pos := 0; pos < len(line); {
		c := line[pos]
		var next byte
		if pos+1 < len(line) {
			next = line[pos+1]
		}
		inSpan := lx.inBold || lx.inItalic
		switch {
		case c == '#' && pos == 0 && !inSpan:
			level := 0
			for pos < len(line) && line[pos] == '#' {
				level++
				pos++
			}
			pos = skipSpaces(line, pos)
			lx.emit(HeadingToken(headingLevel(level), line[pos:]))
			return i + 1
		case c == '>' && !inSpan:
			lx.flushText()
			pos = skipSpaces(line, pos+1)
			lx.emit(BlockQuoteToken(line[pos:]))
			return i + 1
		case (c == '-' || c == '+') && !inSpan:
			lx.flushText()
			return lx.lexList(lines, i, skipSpaces(line, pos+1))
		case c == '*' && next == '*':
			pos += 2
			if lx.inBold {
				lx.emitSpan(TokenBold)
				lx.inBold = false
			} else {
				lx.flushText()
				lx.inBold = true
			}
		case c == '_' && !lx.inItalic:
			lx.flushText()
			pos++
			if next == '_' {
				pos++
			}
			lx.inItalic = true
		case c == '_' && next == '_':
			pos += 2
			lx.emitSpan(TokenItalic)
			lx.inItalic = false
		case c == '[' && next == '^' && !inSpan:
			label, n, ok := parseNoteReference(line[pos:])
			if !ok {
				lx.buf = append(lx.buf, c)
				pos++
				continue
			}
			lx.flushText()
			lx.emit(NoteReferenceToken(label))
			pos += n
		default:
			lx.buf = append(lx.buf, c)
			pos++
		}
	}
	lx.flushText()
	return i + 1
}

// lexList emits the item starting at lines[i][start:] and every following
// list line. Blank lines do not end the list; any other line does and is
// left for the caller.
func (lx *lexer) lexList(lines []string, i, start int) int {
	lx.emitListItem(lines[i][start:])
	for i++; i < len(lines); i++ {
		rest := strings.TrimLeft(lines[i], " \t")
		switch {
		case rest == "":
		case rest[0] == '-' || rest[0] == '+':
			lx.emitListItem(rest[1:])
		default:
			return i
		}
	}
	return i
}

func (lx *lexer) emitListItem(text string) {
	if item := strings.TrimSpace(text); item != "" {
		lx.emit(ListItemToken(item))
	}
}

func (lx *lexer) emit(tok Token) {
	lx.tokens = append(lx.tokens, tok)
}

func (lx *lexer) flushText() {
	if text := strings.TrimSpace(string(lx.buf)); text != "" {
		lx.emit(TextToken(text))
	}
	lx.buf = lx.buf[:0]
}

func (lx *lexer) emitSpan(kind TokenKind) {
	lx.emit(Token{Kind: kind, Text: strings.TrimSpace(string(lx.buf))})
	lx.buf = lx.buf[:0]
}

// parseNoteDefinition matches a whole line of the form "[^label]: content".
// The label is the longest one that still leaves a separator and content.
func parseNoteDefinition(line string) (label, content string, ok bool) {
	if !strings.HasPrefix(line, notePrefix) {
		return "", "", false
	}
	for j := len(line) - 4; j > len(notePrefix); j-- {
		if line[j] == ']' && line[j+1] == ':' && isSpace(line[j+2]) {
			return line[len(notePrefix):j], line[j+3:], true
		}
	}
	return "", "", false
}

// parseNoteReference matches "[^label]" at the start of s and reports the
// number of bytes it spans.
func parseNoteReference(s string) (string, int, bool) {
	if !strings.HasPrefix(s, notePrefix) {
		return "", 0, false
	}
	end := strings.IndexByte(s, ']')
	if end <= len(notePrefix) {
		return "", 0, false
	}
	label := s[len(notePrefix):end]
	if strings.IndexFunc(label, func(r rune) bool { return r <= ' ' }) >= 0 {
		return "", 0, false
	}
	return label, end + 1, true
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	return pos
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}
