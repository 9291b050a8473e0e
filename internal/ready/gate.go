// Package ready implements the startup gate: a readiness signal published
// once the runtime services of an invocation are constructed, and a gate
// that blocks callers until that happens.
package ready

import (
	"runtime"
	"sync/atomic"
	"time"
)

// DefaultPollInterval is how long the gate sleeps between readiness checks.
const DefaultPollInterval = 10 * time.Millisecond

// Signal is a one-way readiness flag. The zero value is not ready.
type Signal struct {
	ready atomic.Bool
}

// Set marks the signal ready. Setting an already-ready signal is a no-op.
func (s *Signal) Set() {
	s.ready.Store(true)
}

// Ready reports whether the signal has been set.
func (s *Signal) Ready() bool {
	return s.ready.Load()
}

// Gate blocks callers until its signal is set.
type Gate struct {
	signal *Signal
	poll   time.Duration
}

// NewGate returns a gate over the given signal.
func NewGate(s *Signal) *Gate {
	return &Gate{signal: s, poll: DefaultPollInterval}
}

// Await blocks until the signal is set, yielding between checks so the
// goroutine publishing readiness is never starved by the wait itself.
//
// There is deliberately no timeout and no cancellation: if readiness never
// arrives, Await never returns. That the hosting environment eventually
// becomes ready is an accepted liveness assumption, not an error this
// package handles.
func (g *Gate) Await() {
	for !g.signal.Ready() {
		runtime.Gosched()
		time.Sleep(g.poll)
	}
}
