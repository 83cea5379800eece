package chatmd

// Option configures a Renderer or CommonMarkRenderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	highlight      bool
	highlightStyle string
	safeURLs       bool
	tags           []string
	tagsSet        bool
}

// WithHighlighting enables chroma syntax highlighting of fenced code.
// Output uses CSS classes; see WriteHighlightCSS.
func WithHighlighting(enabled bool) Option {
	return func(c *rendererConfig) {
		c.highlight = enabled
	}
}

// WithHighlightStyle selects the chroma style used for highlighting.
// Unknown names make the constructor fail with ErrUnknownHighlightStyle.
func WithHighlightStyle(name string) Option {
	return func(c *rendererConfig) {
		c.highlightStyle = name
	}
}

// WithSafeURLs drops links and images whose URL uses a script-capable
// scheme such as javascript:, keeping the visible text. The scheme is read
// after removing tabs, newlines and surrounding control characters.
func WithSafeURLs(enabled bool) Option {
	return func(c *rendererConfig) {
		c.safeURLs = enabled
	}
}

// WithSideChannelTags replaces the list of tag pairs removed before
// rendering (default: think). Calling it with no tags disables removal.
func WithSideChannelTags(tags ...string) Option {
	return func(c *rendererConfig) {
		c.tags = append([]string{}, tags...)
		c.tagsSet = true
	}
}

func buildConfig(opts []Option) rendererConfig {
	var cfg rendererConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
