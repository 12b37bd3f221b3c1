package profile

// Profiler describes a profiling session.
type Profiler struct {
	// Mode is one of [Modes]; empty disables profiling.
	Mode string
	// Path is the output directory. Empty uses a temporary directory.
	Path string
	// Quiet suppresses the profiler's own start and stop messages.
	Quiet bool
}

// Option derives a new Profiler from an existing one.
type Option func(Profiler) Profiler

// Make returns a Profiler with the given options applied.
func Make(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// WithMode sets the profiling mode.
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet sets whether the profiler reports on standard error.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

// Start begins profiling and returns a handle that stops it.
//
// If the pprof build tag is unset, or Mode is empty or unknown, Start
// returns a no-op handle. Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
