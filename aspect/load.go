package aspect

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
)

// document is the YAML form of a Registry.
//
//	types:
//	  Greeter: {}
//	methods:
//	  Calculator.Divide:
//	    logResultType: false
//	rules:
//	  - scope: method
//	    when: 'class == "Repo" && method startsWith "Get"'
//	    config: {logResult: false}
type document struct {
	Types   map[string]rawConfig `yaml:"types,omitempty"`
	Methods map[string]rawConfig `yaml:"methods,omitempty"`
	Rules   []ruleDocument       `yaml:"rules,omitempty"`
}

type ruleDocument struct {
	Scope  string    `yaml:"scope,omitempty"`
	When   string    `yaml:"when"`
	Config rawConfig `yaml:"config,omitempty"`
}

// Load reads a YAML attachment document from rd and adds its attachments and
// rules to r. Flags absent from a bundle default to enabled; unknown keys are
// rejected. Nothing is added unless the whole document is valid.
func (r *Registry) Load(rd io.Reader) error {
	var doc document

	err := yaml.NewDecoder(rd, yaml.DisallowUnknownField()).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return ErrLoad.Wrap(err)
	}

	methods := make(map[Site]Config, len(doc.Methods))

	for name, raw := range doc.Methods {
		site, err := ParseSite(name)
		if err != nil {
			return ErrLoad.Wrap(err)
		}

		methods[site] = raw.config()
	}

	rules := make([]Rule, 0, len(doc.Rules))

	for i, spec := range doc.Rules {
		scope, err := ParseScope(spec.Scope)
		if err != nil {
			return ErrLoad.Wrap(err).With(slog.Int("rule", i))
		}

		rule, err := CompileRule(scope, spec.When, spec.Config.config())
		if err != nil {
			return ErrLoad.Wrap(err).With(slog.Int("rule", i))
		}

		rules = append(rules, rule)
	}

	for name, raw := range doc.Types {
		r.AttachType(name, raw.config())
	}

	for site, cfg := range methods {
		r.AttachMethod(site, cfg)
	}

	for _, rule := range rules {
		r.AddRule(rule)
	}

	return nil
}

// LoadFile reads the YAML attachment document at path into r.
func (r *Registry) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return ErrLoad.Wrap(err).With(slog.String("file", path))
	}
	defer file.Close()

	err = r.Load(file)
	if err != nil {
		return WrapError(err).With(slog.String("file", path))
	}

	return nil
}

// Dump writes the attachments and rules of r as a YAML document that
// [Registry.Load] accepts. Bundles list only their disabled flags.
func (r *Registry) Dump(w io.Writer) error {
	r.mu.RLock()

	doc := document{
		Types:   make(map[string]rawConfig, len(r.types)),
		Methods: make(map[string]rawConfig, len(r.methods)),
		Rules:   make([]ruleDocument, 0, len(r.rules)),
	}

	for name, cfg := range r.types {
		doc.Types[name] = makeRawConfig(cfg)
	}

	for site, cfg := range r.methods {
		doc.Methods[site.String()] = makeRawConfig(cfg)
	}

	for _, rule := range r.rules {
		doc.Rules = append(doc.Rules, ruleDocument{
			Scope:  rule.Scope.String(),
			When:   rule.When,
			Config: makeRawConfig(rule.Config),
		})
	}

	r.mu.RUnlock()

	data, err := yaml.MarshalWithOptions(doc, yaml.Indent(2))
	if err != nil {
		return ErrDump.Wrap(err)
	}

	_, err = w.Write(data)
	if err != nil {
		return ErrDump.Wrap(err)
	}

	return nil
}
