package aspect

import (
	"iter"
	"strconv"
	"strings"
)

// Config selects which parts of a call are written to the trace.
//
// A Config is an immutable value. It is attached to a declaring type or to an
// individual method through a [Registry], and the zero value disables
// everything. Use [Default] for the conventional all-enabled bundle.
type Config struct {
	// Class emits the declaring type name.
	Class bool `yaml:"logClass"`
	// Method emits the callable name.
	Method bool `yaml:"logMethod"`
	// Params emits the arguments.
	Params bool `yaml:"logParams"`
	// ParamTypes emits each argument's type alongside its value.
	// Only meaningful if Params is set.
	ParamTypes bool `yaml:"logParamTypes"`
	// Result emits the return value.
	Result bool `yaml:"logResult"`
	// ResultType emits the return value's type.
	// Only meaningful if Result is set.
	ResultType bool `yaml:"logResultType"`
	// Time emits the elapsed wall-clock time in milliseconds.
	Time bool `yaml:"logTime"`
}

// Default returns a Config with every flag enabled, optionally modified by
// the given options.
func Default(opts ...ConfigOption) Config {
	return Config{
		Class:      true,
		Method:     true,
		Params:     true,
		ParamTypes: true,
		Result:     true,
		ResultType: true,
		Time:       true,
	}.With(opts...)
}

// Disabled returns a Config with every flag disabled, optionally modified by
// the given options.
func Disabled(opts ...ConfigOption) Config {
	return Config{}.With(opts...)
}

// ConfigOption derives a new Config from an existing one.
type ConfigOption func(Config) Config

// With returns a copy of c with the given options applied.
func (c Config) With(opts ...ConfigOption) Config {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// LogClass sets [Config.Class].
func LogClass(enable bool) ConfigOption {
	return func(c Config) Config {
		c.Class = enable

		return c
	}
}

// LogMethod sets [Config.Method].
func LogMethod(enable bool) ConfigOption {
	return func(c Config) Config {
		c.Method = enable

		return c
	}
}

// LogParams sets [Config.Params].
func LogParams(enable bool) ConfigOption {
	return func(c Config) Config {
		c.Params = enable

		return c
	}
}

// LogParamTypes sets [Config.ParamTypes].
func LogParamTypes(enable bool) ConfigOption {
	return func(c Config) Config {
		c.ParamTypes = enable

		return c
	}
}

// LogResult sets [Config.Result].
func LogResult(enable bool) ConfigOption {
	return func(c Config) Config {
		c.Result = enable

		return c
	}
}

// LogResultType sets [Config.ResultType].
func LogResultType(enable bool) ConfigOption {
	return func(c Config) Config {
		c.ResultType = enable

		return c
	}
}

// LogTime sets [Config.Time].
func LogTime(enable bool) ConfigOption {
	return func(c Config) Config {
		c.Time = enable

		return c
	}
}

// Flags returns an iterator over the flag names and values of c in their
// canonical order.
func (c Config) Flags() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, f := range []struct {
			name string
			on   bool
		}{
			{"logClass", c.Class},
			{"logMethod", c.Method},
			{"logParams", c.Params},
			{"logParamTypes", c.ParamTypes},
			{"logResult", c.Result},
			{"logResultType", c.ResultType},
			{"logTime", c.Time},
		} {
			if !yield(f.name, f.on) {
				return
			}
		}
	}
}

// String returns the flags of c as a brace-delimited list.
func (c Config) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true
	for name, on := range c.Flags() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		sb.WriteString(name)
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatBool(on))
	}

	sb.WriteByte('}')

	return sb.String()
}

// rawConfig is the document form of a Config.
// Absent keys keep their default (enabled) value.
type rawConfig struct {
	Class      *bool `yaml:"logClass,omitempty"`
	Method     *bool `yaml:"logMethod,omitempty"`
	Params     *bool `yaml:"logParams,omitempty"`
	ParamTypes *bool `yaml:"logParamTypes,omitempty"`
	Result     *bool `yaml:"logResult,omitempty"`
	ResultType *bool `yaml:"logResultType,omitempty"`
	Time       *bool `yaml:"logTime,omitempty"`
}

func (r rawConfig) config() Config {
	c := Default()

	for dst, src := range map[*bool]*bool{
		&c.Class:      r.Class,
		&c.Method:     r.Method,
		&c.Params:     r.Params,
		&c.ParamTypes: r.ParamTypes,
		&c.Result:     r.Result,
		&c.ResultType: r.ResultType,
		&c.Time:       r.Time,
	} {
		if src != nil {
			*dst = *src
		}
	}

	return c
}

// makeRawConfig returns the document form of c, listing only the flags that
// differ from [Default].
func makeRawConfig(c Config) rawConfig {
	off := func(on bool) *bool {
		if on {
			return nil
		}

		return new(bool)
	}

	return rawConfig{
		Class:      off(c.Class),
		Method:     off(c.Method),
		Params:     off(c.Params),
		ParamTypes: off(c.ParamTypes),
		Result:     off(c.Result),
		ResultType: off(c.ResultType),
		Time:       off(c.Time),
	}
}
