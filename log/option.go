package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithDefaults resets every setting to its default and writes to w.
func WithDefaults(w io.Writer) Option {
	return func(config) config {
		return config{
			output:     w,
			formatTime: makeFormatTimeFunc(DefaultTimeLayout),
			level:      DefaultLevel,
			format:     DefaultFormat,
			caller:     DefaultCaller,
			pretty:     DefaultPretty,
		}
	}
}

// WithOutput sets the writer that receives log messages.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		c.output = w

		return c
	}
}

// WithLevel sets the minimum level of messages written.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout sets the timestamp layout. The layout is either a name from
// the time package, matched case-insensitively ignoring punctuation (e.g.
// "RFC3339Nano", "kitchen", "ms"), a custom layout string, or "none" to
// omit timestamps entirely.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithCaller enables the source file and line of the logging call site.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithPretty enables colorized text output.
// It has no effect on [FormatJSON].
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}
