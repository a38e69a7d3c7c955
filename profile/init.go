package profile

// Profiler describes one profiling session.
type Profiler struct {
	// Mode selects the profile kind. An empty Mode disables profiling.
	Mode string
	// Path is the output directory for profile data.
	Path string
	// Quiet suppresses the profiler's own start and stop messages.
	Quiet bool
}

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Start begins profiling and returns the handle that ends it.
//
// If the pprof build tag or p.Mode are unset, then Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// Enabled reports whether profiling support was compiled in.
func Enabled() bool { return enabled }

type ignore struct{}

func (ignore) Stop() {}
