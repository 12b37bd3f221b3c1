package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	val, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return val
}

func TestResolveYAML_FlattensNestedKeys(t *testing.T) {
	doc := `
log:
  level: debug
  pretty: false
  time_layout: kitchen
demo:
  parallel: 4
attach:
  - a.yaml
  - b.yaml
`

	r, err := resolveYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolveYAML failed: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-pretty", false},
		{"log-time-layout", "kitchen"},
		{"demo-parallel", "4"},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			if got := resolveFlag(t, r, tt.flag); got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}

	attach, ok := resolveFlag(t, r, "attach").([]any)
	if !ok || !slices.Equal(attach, []any{"a.yaml", "b.yaml"}) {
		t.Errorf("Resolve(attach) = %#v", attach)
	}
}

func TestResolveYAML_FlatKeys(t *testing.T) {
	r, err := resolveYAML(strings.NewReader("log_format: json\nlog-caller: true\n"))
	if err != nil {
		t.Fatalf("resolveYAML failed: %v", err)
	}

	if got := resolveFlag(t, r, "log-format"); got != "json" {
		t.Errorf("log-format = %#v", got)
	}

	if got := resolveFlag(t, r, "log-caller"); got != true {
		t.Errorf("log-caller = %#v", got)
	}
}

func TestResolveYAML_Empty(t *testing.T) {
	r, err := resolveYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("resolveYAML(empty) failed: %v", err)
	}

	if got := resolveFlag(t, r, "log-level"); got != nil {
		t.Errorf("log-level = %#v, want nil", got)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestResolveYAML_Invalid(t *testing.T) {
	if _, err := resolveYAML(strings.NewReader("log: [unterminated\n")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestResolveYAML_AppliesToParser(t *testing.T) {
	var cli struct {
		Level  string `default:"info"`
		Pretty bool   `default:"true" negatable:""`
		Count  int    `default:"1"`
	}

	r, err := resolveYAML(strings.NewReader("level: warn\npretty: false\ncount: 3\n"))
	if err != nil {
		t.Fatalf("resolveYAML failed: %v", err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(r), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("kong.New failed: %v", err)
	}

	if _, err := parser.Parse([]string{"--count=5"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cli.Level != "warn" || cli.Pretty || cli.Count != 5 {
		t.Errorf("parsed %+v, want level=warn pretty=false count=5", cli)
	}
}
