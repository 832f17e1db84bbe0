package markdown

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FrontMatterFormat identifies the syntax of a front matter block.
type FrontMatterFormat uint8

const (
	// FrontMatterNone means the document has no front matter.
	FrontMatterNone FrontMatterFormat = iota
	// FrontMatterYAML is delimited by ---.
	FrontMatterYAML
	// FrontMatterTOML is delimited by +++.
	FrontMatterTOML
	// FrontMatterJSON is delimited by ;;;.
	FrontMatterJSON
)

func (f FrontMatterFormat) String() string {
	switch f {
	case FrontMatterYAML:
		return "yaml"
	case FrontMatterTOML:
		return "toml"
	case FrontMatterJSON:
		return "json"
	default:
		return "none"
	}
}

// FrontMatter is the metadata block found at the start of a document.
// Fields is nil when the block could not be decoded.
type FrontMatter struct {
	Format FrontMatterFormat
	Title  string
	Fields map[string]any
}

// SplitFrontMatter separates a leading front matter block from the
// document body. Documents without a complete, metadata-looking block are
// returned unchanged with a zero FrontMatter.
func SplitFrontMatter(src []byte) (FrontMatter, []byte) {
	openLine, openNext, ok := nextLine(src, 0)
	if !ok {
		return FrontMatter{}, src
	}
	format, delim, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok {
		return FrontMatter{}, src
	}
	secondLine, secondNext, ok := nextLine(src, openNext)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return FrontMatter{}, src
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, secondNext, delim)
	if !found {
		return FrontMatter{}, src
	}
	fm := FrontMatter{Format: format}
	fm.decode(src[openNext:closeStart])
	return fm, src[closeNext:]
}

func (fm *FrontMatter) decode(block []byte) {
	fields := map[string]any{}
	var err error
	switch fm.Format {
	case FrontMatterYAML:
		err = yaml.Unmarshal(block, &fields)
	case FrontMatterTOML:
		_, err = toml.Decode(string(block), &fields)
	case FrontMatterJSON:
		err = json.Unmarshal(block, &fields)
	}
	if err != nil {
		return
	}
	fm.Fields = fields
	if title, ok := fields["title"].(string); ok {
		fm.Title = title
	}
}

// nextLine returns the line starting at start without its line break, and
// the offset of the following line.
func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseOpeningFrontMatterDelimiter(line []byte) (FrontMatterFormat, []byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return FrontMatterYAML, []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return FrontMatterTOML, []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return FrontMatterJSON, []byte(";;;"), true
	default:
		return FrontMatterNone, nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the offsets of the closing
// delimiter line and of the line after it.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
