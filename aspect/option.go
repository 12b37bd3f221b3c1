package aspect

import (
	"io"
	"os"
	"time"
)

// Clock returns the current time. It is read immediately before and after
// each intercepted call.
type Clock func() time.Time

// options holds the configuration of an Interceptor.
type options struct {
	output       io.Writer
	registry     *Registry
	clock        Clock
	color        ColorMode
	legacyParens bool
}

// Option applies a configuration option to an Interceptor.
type Option func(options) options

// apply applies multiple options to o.
func apply(o options, opts ...Option) options {
	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

// WithDefaults returns an option that restores the default configuration:
// output to [os.Stdout], an empty registry, [time.Now], no color, and the
// balanced parenthesis policy.
func WithDefaults() Option {
	return func(options) options {
		return options{
			output:   os.Stdout,
			registry: NewRegistry(),
			clock:    time.Now,
			color:    ColorNever,
		}
	}
}

// WithOutput sets the sink trace lines are written to.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(o options) options {
		if w == nil {
			w = io.Discard
		}

		o.output = w

		return o
	}
}

// WithRegistry sets the registry consulted for attachments.
// A nil registry is replaced with an empty one.
func WithRegistry(r *Registry) Option {
	return func(o options) options {
		if r == nil {
			r = NewRegistry()
		}

		o.registry = r

		return o
	}
}

// WithClock sets the clock read around each call.
// A nil clock is replaced with [time.Now].
func WithClock(c Clock) Option {
	return func(o options) options {
		if c == nil {
			c = time.Now
		}

		o.clock = c

		return o
	}
}

// WithColor sets whether trace lines are colorized.
func WithColor(mode ColorMode) Option {
	return func(o options) options {
		o.color = mode

		return o
	}
}

// WithLegacyParens selects the parenthesis policy of the call segment.
//
// By default the parentheses are written as a pair whenever the method name
// or the arguments are logged. With legacy parentheses enabled, the opening
// parenthesis follows the method flag and the closing parenthesis is always
// written, so disabling the method name while keeping arguments yields an
// unbalanced segment such as "Foo.string Ada)".
func WithLegacyParens(enable bool) Option {
	return func(o options) options {
		o.legacyParens = enable

		return o
	}
}
