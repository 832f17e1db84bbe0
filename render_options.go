package markdown

// RenderOption configures Render and HTTPRender.
type RenderOption func(*renderConfig)

type renderConfig struct {
	validate    bool
	frontMatter bool
	document    bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithValidation rejects input that is not valid UTF-8 or looks binary.
// Without it, invalid bytes and control characters are dropped.
func WithValidation(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.validate = enabled
	}
}

// WithFrontMatter strips a YAML, TOML or JSON front matter block at the
// start of the document.
func WithFrontMatter(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = enabled
	}
}

// WithDocument wraps the rendered body in a complete HTML document.
func WithDocument(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.document = enabled
	}
}
