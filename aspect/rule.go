package aspect

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Scope is the attachment level a [Rule] contributes to.
type Scope int

const (
	ScopeMethod Scope = iota // method
	ScopeType                // type
)

// String returns the document spelling of s.
func (s Scope) String() string {
	switch s {
	case ScopeType:
		return "type"
	case ScopeMethod:
		return "method"
	default:
		return "invalid"
	}
}

// ParseScope parses "type" or "method".
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "type", "class":
		return ScopeType, nil
	case "", "method":
		return ScopeMethod, nil
	default:
		return 0, ErrInvalidScope.With(slog.String("scope", s))
	}
}

// ruleEnv is the environment visible to rule expressions.
type ruleEnv struct {
	Type   string `expr:"class"`
	Method string `expr:"method"`
}

// Rule attaches a Config to every site whose name satisfies a boolean
// expr-lang expression over the variables class (the declaring type name)
// and method.
//
// Type-scoped rules are evaluated with method bound to the empty string.
//
//	rule, err := aspect.CompileRule(aspect.ScopeMethod,
//		`class == "Repo" && method startsWith "Get"`,
//		aspect.Default(aspect.LogResult(false)))
type Rule struct {
	Scope  Scope
	When   string
	Config Config

	program *vm.Program
}

// CompileRule compiles the expression when into a Rule.
func CompileRule(scope Scope, when string, cfg Config) (Rule, error) {
	if scope != ScopeType && scope != ScopeMethod {
		return Rule{}, ErrInvalidScope.With(slog.Int("scope", int(scope)))
	}

	program, err := expr.Compile(when, expr.Env(ruleEnv{}), expr.AsBool())
	if err != nil {
		return Rule{}, ErrRuleCompile.Wrap(err).
			With(slog.String("when", when))
	}

	return Rule{Scope: scope, When: when, Config: cfg, program: program}, nil
}

// Match reports whether the rule applies to site.
func (r Rule) Match(site Site) (bool, error) {
	if r.program == nil {
		return false, ErrRuleEvaluate.With(slog.String("when", r.When))
	}

	env := ruleEnv{Type: site.Type}
	if r.Scope == ScopeMethod {
		env.Method = site.Method
	}

	out, err := vm.Run(r.program, env)
	if err != nil {
		return false, ErrRuleEvaluate.Wrap(err).
			With(slog.String("when", r.When), slog.String("site", site.String()))
	}

	ok, _ := out.(bool)

	return ok, nil
}
