package cmd

import (
	"context"
	"log/slog"

	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/calltrace/aspect"
)

// maxSuggestions bounds the attached sites listed for an unattached one.
const maxSuggestions = 3

// Resolve prints the effective configuration of call sites.
type Resolve struct {
	Sites []string `arg:"" help:"Call sites of the form Type.Method" name:"site"`
}

// resolution is the YAML form of one resolved site.
type resolution struct {
	Site        string         `yaml:"site"`
	Attached    bool           `yaml:"attached"`
	Config      *aspect.Config `yaml:"config,omitempty"`
	Suggestions []string       `yaml:"suggestions,omitempty"`
}

// Run executes the resolve command.
func (r *Resolve) Run(ctx context.Context) error {
	reg, err := registryFrom(ctx)
	if err != nil {
		return err
	}

	known := reg.Sites()
	out := make([]resolution, 0, len(r.Sites))

	for _, name := range r.Sites {
		site, err := aspect.ParseSite(name)
		if err != nil {
			return ErrResolve.Wrap(err).With(slog.String("site", name))
		}

		res := resolution{Site: site.String()}

		cfg, ok := reg.Resolve(site)
		if ok {
			res.Attached = true
			res.Config = &cfg
		} else {
			res.Suggestions = suggest(site, known)
		}

		out = append(out, res)
	}

	data, err := yaml.MarshalWithOptions(out, yaml.Indent(2))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = stdout(ctx).Write(data)

	return err
}

// suggest returns the attached names closest to site, best match first.
// Without a match for the whole site, the type name alone is tried.
func suggest(site aspect.Site, known []string) []string {
	matches := fuzzy.Find(site.String(), known)
	if len(matches) == 0 && site.Type != "" {
		matches = fuzzy.Find(site.Type, known)
	}

	names := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches[:min(len(matches), maxSuggestions)] {
		names = append(names, m.Str)
	}

	return names
}
