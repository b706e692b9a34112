package soak

import "time"

// progress decides when a worker should log, checking the clock only every
// N cases so the hot loop stays free of time.Now calls.
//
// Example: With every=64 and interval=5s, the time is checked once per 64
// cases, and a report fires if 5s have passed since the last one.
type progress struct {
	interval time.Duration
	every    int
	count    int
	last     time.Time
}

func newProgress(interval time.Duration, every int) *progress {
	if every < 1 {
		every = 1
	}
	return &progress{
		interval: interval,
		every:    every,
		last:     time.Now(),
	}
}

// Tick counts one case and returns true if a report is due.
// Always false when interval is zero.
func (p *progress) Tick() bool {
	p.count++
	if p.interval <= 0 || p.count%p.every != 0 {
		return false
	}

	now := time.Now()
	if now.Sub(p.last) >= p.interval {
		p.last = now
		return true
	}
	return false
}

// Count returns the number of cases counted so far.
func (p *progress) Count() int {
	return p.count
}
