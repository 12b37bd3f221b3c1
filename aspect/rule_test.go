package aspect

import (
	"errors"
	"testing"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    Scope
		wantErr bool
	}{
		{in: "", want: ScopeMethod},
		{in: "method", want: ScopeMethod},
		{in: "Type", want: ScopeType},
		{in: "class", want: ScopeType},
		{in: "package", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScope(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidScope) {
					t.Errorf("ParseScope(%q) error = %v", tt.in, err)
				}

				return
			}

			if err != nil || got != tt.want {
				t.Errorf("ParseScope(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestCompileRule_Match(t *testing.T) {
	tests := []struct {
		name  string
		scope Scope
		when  string
		site  Site
		want  bool
	}{
		{
			name:  "method prefix",
			scope: ScopeMethod,
			when:  `class == "Repo" && method startsWith "Get"`,
			site:  Site{"Repo", "GetUser"},
			want:  true,
		},
		{
			name:  "method prefix mismatch",
			scope: ScopeMethod,
			when:  `class == "Repo" && method startsWith "Get"`,
			site:  Site{"Repo", "PutUser"},
		},
		{
			name:  "type scope hides method",
			scope: ScopeType,
			when:  `method == ""`,
			site:  Site{"Repo", "GetUser"},
			want:  true,
		},
		{
			name:  "regex",
			scope: ScopeType,
			when:  `class matches "^(Greeter|Calculator)$"`,
			site:  Site{"Calculator", "Divide"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileRule(tt.scope, tt.when, Default())
			if err != nil {
				t.Fatalf("CompileRule: %v", err)
			}

			got, err := rule.Match(tt.site)
			if err != nil {
				t.Fatalf("Match: %v", err)
			}

			if got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.site, got, tt.want)
			}
		})
	}
}

func TestCompileRule_Errors(t *testing.T) {
	tests := []struct {
		name  string
		scope Scope
		when  string
		want  error
	}{
		{"syntax", ScopeMethod, `class ==`, ErrRuleCompile},
		{"not boolean", ScopeMethod, `class`, ErrRuleCompile},
		{"unknown variable", ScopeMethod, `receiver == "x"`, ErrRuleCompile},
		{"bad scope", Scope(9), `true`, ErrInvalidScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileRule(tt.scope, tt.when, Default())
			if !errors.Is(err, tt.want) {
				t.Errorf("CompileRule(%q) error = %v, want %v", tt.when, err, tt.want)
			}
		})
	}
}

func TestRule_Match_Uncompiled(t *testing.T) {
	_, err := Rule{When: "true"}.Match(Site{"A", "b"})
	if !errors.Is(err, ErrRuleEvaluate) {
		t.Errorf("Match error = %v, want %v", err, ErrRuleEvaluate)
	}
}
