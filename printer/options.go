package printer

// Options controls how a format run lays out and renders its IR.
type Options struct {
	// IndentWidth is the number of columns (or, with UseTabs, the conceptual width) an indent
	// level occupies. Must be >= 1.
	IndentWidth int
	// MaxWidth is the soft line-width budget the printer tries, but is not required, to respect.
	MaxWidth int
	// UseTabs emits a literal tab per indent unit instead of IndentWidth spaces.
	UseTabs bool
	// NewLineText is the newline sequence written to the rendered output, e.g. "\n" or "\r\n".
	NewLineText string
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = 80
	}
	if o.NewLineText == "" {
		o.NewLineText = "\n"
	}
	return o
}
