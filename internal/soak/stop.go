package soak

import "sync/atomic"

// stopFlag is polled by every worker between cases. A single atomic load
// is much cheaper than a select on ctx.Done() in a tight loop.
type stopFlag struct {
	done atomic.Bool
}

// Done returns true once Stop has been called.
func (s *stopFlag) Done() bool {
	return s.done.Load()
}

// Stop is safe to call multiple times and from any goroutine.
func (s *stopFlag) Stop() {
	s.done.Store(true)
}
