package aspect

import (
	"fmt"
	"time"
)

// State is the lifecycle stage of an [Invocation].
type State int

const (
	StateNotStarted State = iota // not started
	StateRunning                 // running
	StateCompleted               // completed
	StateFailed                  // failed
)

// String returns a readable name for s.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether s is [StateCompleted] or [StateFailed].
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Invocation is the private context of one intercepted call.
//
// An Invocation is created when interception begins and is owned by the
// calling goroutine until the post-call line has been written. It is never
// shared between calls, so concurrent invocations of the same callable each
// carry their own timestamps and outcome.
type Invocation struct {
	Site   Site
	Config Config
	Args   []any

	Start time.Time
	End   time.Time

	// Exactly one of Result and Err is meaningful once the invocation
	// reaches a terminal state.
	Result any
	Err    error

	state State
}

func newInvocation(site Site, cfg Config, args []any) *Invocation {
	return &Invocation{Site: site, Config: cfg, Args: args}
}

// State returns the current lifecycle stage.
func (inv *Invocation) State() State { return inv.state }

// Elapsed returns the whole milliseconds between the start and end clock
// reads, each taken at millisecond resolution. It is never negative.
func (inv *Invocation) Elapsed() int64 {
	ms := inv.End.UnixMilli() - inv.Start.UnixMilli()
	if ms < 0 {
		return 0
	}

	return ms
}

// begin records the start timestamp.
func (inv *Invocation) begin(now time.Time) {
	if inv.state != StateNotStarted {
		panic(fmt.Sprintf("calltrace: begin %s invocation of %s", inv.state, inv.Site))
	}

	inv.Start = now
	inv.state = StateRunning
}

// complete records a normal return.
func (inv *Invocation) complete(now time.Time, result any) {
	inv.finish(now, StateCompleted)
	inv.Result = result
}

// fail records an error outcome.
func (inv *Invocation) fail(now time.Time, err error) {
	inv.finish(now, StateFailed)
	inv.Err = err
}

func (inv *Invocation) finish(now time.Time, state State) {
	if inv.state != StateRunning {
		panic(fmt.Sprintf("calltrace: finish %s invocation of %s", inv.state, inv.Site))
	}

	inv.End = now
	inv.state = state
}
