package markdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// ErrHTMLResponse reports a server that answered with HTML instead of
// Markdown source, typically a rendered page URL instead of its raw form.
var ErrHTMLResponse = errors.New("response is already html")

// markdownAccept prefers Markdown source and never lists HTML.
const markdownAccept = "text/markdown, text/x-markdown;q=0.9, text/plain;q=0.8, */*;q=0.1"

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []RenderOption
}

// HTTPRender fetches Markdown over HTTP(S) and writes it as HTML.
// Responses served as text/html or application/xhtml+xml are rejected with
// ErrHTMLResponse; a missing or unparsable Content-Type is accepted.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("render http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("render http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("render http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("render http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", markdownAccept)
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("render http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("render http: status %s", resp.Status)
	}
	if isHTMLContentType(resp.Header.Get("Content-Type")) {
		return fmt.Errorf("render http: %s: %w", req.URL, ErrHTMLResponse)
	}
	return Render(RenderRequest{
		Reader:  resp.Body,
		Writer:  req.Writer,
		Options: req.Options,
	})
}

func isHTMLContentType(value string) bool {
	if value == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
