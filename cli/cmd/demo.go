package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ardnew/calltrace/aspect"
	"github.com/ardnew/calltrace/log"
)

// Greeter builds greetings. It declares its own type-level attachment.
type Greeter struct {
	Greeting string
}

// CallTrace attaches the default bundle to every Greeter method.
func (Greeter) CallTrace() aspect.Config { return aspect.Default() }

// Greet greets name.
func (g Greeter) Greet(name string) (string, error) {
	return g.Greeting + " " + name, nil
}

// Calculator performs integer arithmetic.
type Calculator struct{}

// ErrDivideByZero is returned by [Calculator.Divide] for a zero divisor.
var ErrDivideByZero = errors.New("division by zero")

// Add returns a+b.
func (Calculator) Add(a, b int) (int, error) { return a + b, nil }

// Divide returns a/b.
func (Calculator) Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}

// DefaultRegistry returns the built-in attachments of the demo types:
// Greeter through its own annotation, Calculator.Divide without argument
// types, and a rule covering the remaining Calculator methods without
// timing.
func DefaultRegistry() *aspect.Registry {
	reg := aspect.NewRegistry()
	reg.Annotate(Greeter{})
	reg.AttachMethod(
		aspect.SiteFor[Calculator]("Divide"),
		aspect.Default(aspect.LogParamTypes(false)),
	)

	rule, err := aspect.CompileRule(aspect.ScopeMethod,
		`class == "Calculator" && method != "Divide"`,
		aspect.Default(aspect.LogTime(false), aspect.LogResultType(false)))
	if err != nil {
		panic(err)
	}

	return reg.AddRule(rule)
}

// Demo runs the bundled example calls through an interceptor.
type Demo struct {
	Parallel     int    `default:"1"     help:"Run the calls from N concurrent goroutines"              short:"n"`
	Color        string `default:"never" enum:"never,auto,always"                                       help:"Colorize trace lines (${enum})."`
	LegacyParens bool   `help:"Tie the opening parenthesis to the method flag and always close it"`
}

// Run executes the demo command.
func (d *Demo) Run(ctx context.Context) error {
	reg, err := registryFrom(ctx)
	if err != nil {
		return err
	}

	ic := aspect.New(
		aspect.WithOutput(stdout(ctx)),
		aspect.WithRegistry(reg),
		aspect.WithColor(aspect.ParseColorMode(d.Color)),
		aspect.WithLegacyParens(d.LegacyParens),
	)

	workers := max(d.Parallel, 1)

	log.DebugContext(ctx, "demo start",
		slog.Int("workers", workers),
		slog.Any("sites", reg.Sites()),
	)

	var wg sync.WaitGroup

	for id := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			name := "Ada"
			if workers > 1 {
				name = fmt.Sprintf("worker-%d", id)
			}

			runDemo(ctx, ic, name)
		}()
	}

	wg.Wait()

	return nil
}

func runDemo(ctx context.Context, ic *aspect.Interceptor, name string) {
	greet := aspect.Func1(ic, aspect.SiteFor[Greeter]("Greet"),
		Greeter{Greeting: "hi"}.Greet)

	var calc Calculator

	add := aspect.Func2(ic, aspect.SiteFor[Calculator]("Add"), calc.Add)
	divide := aspect.Func2(ic, aspect.SiteFor[Calculator]("Divide"), calc.Divide)

	_, _ = greet(name)
	_, _ = add(2, 3)
	_, _ = divide(6, 3)

	_, err := divide(1, 0)
	if errors.Is(err, ErrDivideByZero) {
		log.DebugContext(ctx, "division failed as expected", slog.Any("error", err))
	}
}
