package markdown

import (
	"fmt"
	"io"
	"strings"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// Render reads a whole Markdown document from Reader and writes its HTML
// to Writer. Errors come only from I/O and, with WithValidation, from
// rejected input; conversion itself cannot fail.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	out, err := renderSource(src, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// PrepareSource applies the input handling of opts to src before lexing:
// validation when enabled, then removal of invalid UTF-8 and control
// characters, then front matter splitting when enabled. Render and the
// token and AST dumps share it so every stage sees the same text.
func PrepareSource(src []byte, opts ...RenderOption) (FrontMatter, []byte, error) {
	return prepareSource(src, newRenderConfig(opts))
}

func prepareSource(src []byte, cfg renderConfig) (FrontMatter, []byte, error) {
	if cfg.validate {
		if err := ValidateInput(src); err != nil {
			return FrontMatter{}, nil, err
		}
	}
	src = sanitize(src)
	if !cfg.frontMatter {
		return FrontMatter{}, src, nil
	}
	fm, body := SplitFrontMatter(src)
	return fm, body, nil
}

func renderSource(src []byte, cfg renderConfig) (string, error) {
	fm, src, err := prepareSource(src, cfg)
	if err != nil {
		return "", err
	}
	nodes := Parse(Lex(string(src)))
	body := RenderHTML(nodes)
	if !cfg.document {
		return body, nil
	}
	title := fm.Title
	if title == "" {
		title, _ = firstHeading(nodes, H1)
	}
	return wrapDocument(title, body), nil
}

func wrapDocument(title, body string) string {
	var b strings.Builder
	b.Grow(len(body) + len(title) + 128)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(title)
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
