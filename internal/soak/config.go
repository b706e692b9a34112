package soak

import (
	"runtime"
	"time"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/ringqueue/internal/proptest"
)

// Config controls a soak run.
type Config struct {
	// Cases is the number of generated cases to run. Zero means run until
	// Duration elapses or the context is cancelled.
	Cases int

	// MaxCap and MaxLen bound generated capacities and sequence lengths.
	MaxCap int
	MaxLen int

	// Seed is the base seed; case i is generated from Seed+i no matter
	// which worker runs it.
	Seed int64

	// Workers is the number of goroutines generating and replaying cases.
	Workers int

	// Duration stops the run after this long. Zero means no limit.
	Duration time.Duration

	// Each worker checks the clock every ReportEvery cases and logs
	// progress once ReportInterval has passed. A zero interval disables
	// progress logs.
	ReportEvery    int
	ReportInterval time.Duration
}

// DefaultConfig returns a Config running 1000 cases with the default
// generator bounds on GOMAXPROCS workers.
func DefaultConfig() Config {
	return Config{
		Cases:          1000,
		MaxCap:         proptest.DefaultMaxCap,
		MaxLen:         proptest.DefaultMaxLen,
		Seed:           1,
		Workers:        runtime.GOMAXPROCS(0),
		ReportEvery:    64,
		ReportInterval: 5 * time.Second,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Cases < 0:
		return errors.Errorf("cases must not be negative, got %d", c.Cases)
	case c.Cases == 0 && c.Duration <= 0:
		return errors.New("either cases or duration must be set")
	case c.MaxCap < 1:
		return errors.Errorf("max capacity must be at least 1, got %d", c.MaxCap)
	case c.MaxLen < 1:
		return errors.Errorf("max length must be at least 1, got %d", c.MaxLen)
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.Duration < 0:
		return errors.Errorf("duration must not be negative, got %s", c.Duration)
	case c.ReportEvery < 1:
		return errors.Errorf("report-every must be at least 1, got %d", c.ReportEvery)
	case c.ReportInterval < 0:
		return errors.Errorf("report interval must not be negative, got %s", c.ReportInterval)
	}
	return nil
}
