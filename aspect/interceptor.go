package aspect

// Interceptor writes trace lines around calls to attached callables.
//
// An Interceptor holds no per-call state: every call gets its own
// [Invocation], so a single Interceptor may wrap any number of callables
// invoked from any number of goroutines.
type Interceptor struct {
	registry *Registry
	sink     *sink
	clock    Clock
	format   formatter
}

// New creates an Interceptor.
// The default configuration writes uncolored lines to [os.Stdout], reads
// [time.Now], and resolves against a new empty [Registry]; see [WithDefaults].
func New(opts ...Option) *Interceptor {
	o := apply(apply(options{}, WithDefaults()), opts...)

	return &Interceptor{
		registry: o.registry,
		sink:     newSink(o.output),
		clock:    o.clock,
		format: formatter{
			style:        makePalette(o.output, o.color),
			legacyParens: o.legacyParens,
		},
	}
}

// Registry returns the registry consulted for attachments.
func (ic *Interceptor) Registry() *Registry { return ic.registry }

// Invoke runs call as the callable identified by site with the given
// arguments.
//
// If site is not attached, call is invoked directly and nothing is written.
// Otherwise the pre-call line is written, the clock is read immediately
// before and after call, and a success or failure line is written. The
// results of call are returned unchanged, including the identical error
// value. A panic in call is logged as a failure and re-raised with its
// original value.
func (ic *Interceptor) Invoke(
	site Site,
	args []any,
	call func() (any, error),
) (any, error) {
	cfg, ok := ic.registry.Resolve(site)
	if !ok {
		return call()
	}

	inv := newInvocation(site, cfg, args)

	ic.sink.write(ic.format.entry(inv))

	return ic.run(inv, call)
}

func (ic *Interceptor) run(
	inv *Invocation,
	call func() (any, error),
) (any, error) {
	inv.begin(ic.clock())

	defer func() {
		if inv.state.Terminal() {
			return
		}

		// A nil recovery with a running invocation means the goroutine is
		// exiting through runtime.Goexit, which must not be turned into a
		// panic.
		p := recover()
		if p == nil {
			return
		}

		inv.fail(ic.clock(), &PanicError{Value: p})
		ic.sink.write(ic.format.failure(inv))

		panic(p)
	}()

	result, err := call()
	end := ic.clock()

	if err != nil {
		inv.fail(end, err)
		ic.sink.write(ic.format.failure(inv))

		return result, err
	}

	inv.complete(end, result)
	ic.sink.write(ic.format.success(inv))

	return result, nil
}
