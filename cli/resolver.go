package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML flag defaults files.
//
// Keys are flag names; hyphens and underscores are interchangeable, and
// nested mappings join their keys with a hyphen, so both documents below set
// --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//	  pretty: false
//
// Command-line flags override values from the file.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	flat := make(config)
	flat.flatten("", doc)

	return flat, nil
}

// config implements [kong.Resolver] over flattened flag values.
type config map[string]any

// flatten adds the leaves of m to c, keyed by their hyphen-joined path.
func (c config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		if nested, ok := value.(map[string]any); ok {
			c.flatten(name, nested)

			continue
		}

		c[name] = flagValue(value)
	}
}

// flagValue converts a decoded YAML scalar into a form kong's mappers accept.
// Numbers become strings; sequences convert element-wise.
func flagValue(v any) any {
	switch v := v.(type) {
	case bool, string, nil:
		return v

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = flagValue(e)
		}

		return out

	default:
		return fmt.Sprint(v)
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := c[flag.Name]
	if !ok {
		// Let kong use the default.
		return nil, nil //nolint:nilnil
	}

	return value, nil
}
