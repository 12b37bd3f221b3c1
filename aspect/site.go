package aspect

import (
	"log/slog"
	"reflect"
	"strings"
)

// Site identifies a callable by the name of its declaring type and its own
// name. An empty Type denotes a free function.
type Site struct {
	Type   string
	Method string
}

// SiteFor returns the Site of method declared on type T.
//
// T is the declared type as written at the interception point. When T is an
// interface, the interface name is used even though calls dispatch to a
// concrete implementation at run time. Pointer types are named after their
// element type, as in [SiteOf].
func SiteFor[T any](method string) Site {
	return Site{Type: shortTypeName(receiverType(reflect.TypeFor[T]())), Method: method}
}

// SiteOf returns the Site of method declared on the dynamic type of v.
// Pointer receivers are named after their element type.
func SiteOf(v any, method string) Site {
	if v == nil {
		return Site{Method: method}
	}

	return Site{Type: shortTypeName(receiverType(reflect.TypeOf(v))), Method: method}
}

// receiverType strips unnamed pointer layers from t.
func receiverType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}

	return t
}

// ParseSite parses a site of the form "Type.Method", or "function" for a
// free function. The type name may itself contain dots; the method name is
// the text after the last one.
func ParseSite(s string) (Site, error) {
	i := strings.LastIndexByte(s, '.')
	if i < 0 && s != "" {
		return Site{Method: s}, nil
	}

	if i <= 0 || i == len(s)-1 {
		return Site{}, ErrInvalidSite.With(slog.String("site", s))
	}

	return Site{Type: s[:i], Method: s[i+1:]}, nil
}

// String returns the site in the form "Type.Method".
func (s Site) String() string {
	if s.Type == "" {
		return s.Method
	}

	return s.Type + "." + s.Method
}

// TypeNamer is implemented by values that provide their own type name for
// the trace.
type TypeNamer interface {
	TypeName() string
}

// shortTypeName returns the unqualified name of t, or its literal spelling
// for unnamed types such as slices and pointers.
func shortTypeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		// Instantiated generics carry qualified type arguments; keep the
		// base name only.
		if i := strings.IndexByte(name, '['); i > 0 {
			return name[:i]
		}

		return name
	}

	return t.String()
}

// qualifiedTypeName returns the import-path qualified name of t, or its
// literal spelling for predeclared and unnamed types.
func qualifiedTypeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	return t.String()
}
