// Package aspect writes human-readable trace lines around calls to
// callables that opt in through an attachment.
//
// # Attachments
//
// A [Config] bundles seven independent flags selecting what is logged: the
// declaring type, the method name, the arguments, the argument types, the
// result, the result type, and the elapsed time. All of them are enabled by
// [Default].
//
// Bundles are attached in a [Registry] either to a declaring type, applying
// to all of its methods, or to a single method:
//
//	reg := aspect.NewRegistry().
//		AttachType("Greeter", aspect.Default()).
//		AttachMethod(aspect.Site{Type: "Calculator", Method: "Divide"},
//			aspect.Default(aspect.LogResultType(false)))
//
// A type-level attachment shadows every member-level attachment of the same
// type; the two are never merged. Types may also describe themselves through
// [TypeAnnotated] and [MethodAnnotated], pointcut-style [Rule] expressions
// may attach bundles by name, and whole registries may be loaded from YAML
// with [Registry.Load].
//
// # Interception
//
// An [Interceptor] wraps a callable in a decorator of identical signature:
//
//	ic := aspect.New(aspect.WithRegistry(reg))
//	greet := aspect.Func1(ic, aspect.SiteFor[Greeter]("Greet"), g.Greet)
//
//	msg, err := greet("Ada")
//
// Calling the decorator writes one line before the call and one after it:
//
//	Greeter.Greet(string Ada)
//	Greeter.Greet(string Ada) -> string result=hi Ada, time=0ms
//
// If the callable returns an error, the second line reports it instead and
// the identical error value is returned to the caller:
//
//	Calculator.Divide(int 1, int 0) -> exception=division by zero, time=0ms
//
// Sites without an attachment are invoked directly and write nothing.
//
// # Line Format
//
// The call segment is "[Type.][method(][type value, ...][)]", with each part
// omitted when its flag is disabled. Nil arguments and results are written
// as null in both the type and value positions. Types implementing
// [TypeNamer] choose their own name; otherwise arguments use the short Go
// type name and results use the import-path qualified name. See
// [WithLegacyParens] for the two parenthesis policies.
//
// # Concurrency
//
// Each call owns a private [Invocation] holding its timestamps and outcome.
// Lines are written whole with a single Write per line, serialized per
// writer, so concurrent calls interleave only at line granularity.
package aspect
