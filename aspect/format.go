package aspect

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// nullToken stands in for absent values and their types.
const nullToken = "null"

// ColorMode selects whether trace lines are colorized.
type ColorMode int

const (
	ColorNever  ColorMode = iota // never
	ColorAuto                    // auto
	ColorAlways                  // always
)

// String returns the flag spelling of m.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	default:
		return "never"
	}
}

// ParseColorMode parses "never", "auto" or "always".
// Unrecognized input yields [ColorNever].
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto
	case "always":
		return ColorAlways
	default:
		return ColorNever
	}
}

// PanicError carries the value of a panic raised by an intercepted callable.
// It is only used to render the failure line; the panic itself is re-raised
// with the original value.
type PanicError struct {
	Value any
}

// Error returns the panic value's message.
func (e *PanicError) Error() string { return valueString(e.Value) }

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)

	return err
}

// palette renders the colored segments of a line.
type palette struct {
	class, method, kind, value, result, failure, time func(string) string
}

func plainPalette() palette {
	id := func(s string) string { return s }

	return palette{id, id, id, id, id, id, id}
}

func makePalette(w io.Writer, mode ColorMode) palette {
	if mode == ColorNever {
		return plainPalette()
	}

	r := lipgloss.NewRenderer(w)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}

	style := func(color string) func(string) string {
		s := r.NewStyle().Foreground(lipgloss.Color(color))

		return func(v string) string {
			if v == "" {
				return v
			}

			return s.Render(v)
		}
	}

	return palette{
		class:   style("6"),
		method:  style("4"),
		kind:    style("8"),
		value:   style("15"),
		result:  style("2"),
		failure: style("1"),
		time:    style("5"),
	}
}

// formatter renders the three trace lines of an invocation.
type formatter struct {
	style        palette
	legacyParens bool
}

// entry renders the pre-call line.
func (f formatter) entry(inv *Invocation) []byte {
	var sb strings.Builder

	f.call(&sb, inv)
	sb.WriteByte('\n')

	return []byte(sb.String())
}

// success renders the post-call line of a normal return.
func (f formatter) success(inv *Invocation) []byte {
	var sb strings.Builder

	f.call(&sb, inv)
	sb.WriteString(" -> ")

	if inv.Config.Result {
		if inv.Config.ResultType {
			sb.WriteString(f.style.kind(resultTypeName(inv.Result)))
			sb.WriteByte(' ')
		}

		sb.WriteString("result=")
		sb.WriteString(f.style.result(valueString(inv.Result)))
	}

	f.elapsed(&sb, inv)
	sb.WriteByte('\n')

	return []byte(sb.String())
}

// failure renders the post-call line of an error outcome.
func (f formatter) failure(inv *Invocation) []byte {
	var sb strings.Builder

	f.call(&sb, inv)
	sb.WriteString(" -> exception=")
	sb.WriteString(f.style.failure(valueString(inv.Err)))
	f.elapsed(&sb, inv)
	sb.WriteByte('\n')

	return []byte(sb.String())
}

// call renders "[Type.][method(][type value, ...][)]".
func (f formatter) call(sb *strings.Builder, inv *Invocation) {
	cfg := inv.Config

	if cfg.Class && inv.Site.Type != "" {
		sb.WriteString(f.style.class(inv.Site.Type))
		sb.WriteByte('.')
	}

	open, closed := cfg.Method || cfg.Params, cfg.Method || cfg.Params
	if f.legacyParens {
		open, closed = cfg.Method, true
	}

	if cfg.Method {
		sb.WriteString(f.style.method(inv.Site.Method))
	}

	if open {
		sb.WriteByte('(')
	}

	if cfg.Params {
		for i, arg := range inv.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			if cfg.ParamTypes {
				sb.WriteString(f.style.kind(argTypeName(arg)))
				sb.WriteByte(' ')
			}

			sb.WriteString(f.style.value(valueString(arg)))
		}
	}

	if closed {
		sb.WriteByte(')')
	}
}

func (f formatter) elapsed(sb *strings.Builder, inv *Invocation) {
	if !inv.Config.Time {
		return
	}

	sb.WriteString(", time=")
	sb.WriteString(f.style.time(strconv.FormatInt(inv.Elapsed(), 10) + "ms"))
}

// isNil reports whether v is a nil interface or a nil pointer, map, slice,
// function or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// valueString renders v as fmt's %v would, or [nullToken] for nil values.
// Panicking String and Error methods are reported inline by fmt.
func valueString(v any) string {
	if isNil(v) {
		return nullToken
	}

	return fmt.Sprint(v)
}

// argTypeName returns the short type name of an argument.
func argTypeName(v any) string {
	if isNil(v) {
		return nullToken
	}

	if name, ok := namedType(v); ok {
		return name
	}

	return shortTypeName(reflect.TypeOf(v))
}

// resultTypeName returns the qualified type name of a result.
func resultTypeName(v any) string {
	if isNil(v) {
		return nullToken
	}

	if name, ok := namedType(v); ok {
		return name
	}

	return qualifiedTypeName(reflect.TypeOf(v))
}

// namedType calls the TypeName method of v, if any.
// A panicking or empty TypeName falls back to reflection.
func namedType(v any) (name string, ok bool) {
	tn, ok := v.(TypeNamer)
	if !ok {
		return "", false
	}

	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()

	name = tn.TypeName()

	return name, name != ""
}
