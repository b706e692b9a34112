// Package soak runs proptest properties for many cases or a fixed time
// across a pool of workers.
//
// Each worker owns the queues it builds; workers share only an atomic case
// counter, a pass counter and the stop flag. Case i is always generated
// from Seed+i, so a failure found by any worker is reproducible with
// proptest.CheckOne.
package soak

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/ringqueue/internal/proptest"
)

// Report summarizes a finished run.
type Report struct {
	Passed  int64
	Elapsed time.Duration

	// Failure is the first failing case, shrunk, or nil.
	Failure *proptest.Failure
}

type runner struct {
	cfg    Config
	prop   proptest.Property
	logger hclog.Logger

	stop   stopFlag
	next   atomic.Int64
	passed atomic.Int64
}

// Run checks prop until cfg.Cases cases have passed, cfg.Duration elapses,
// ctx is cancelled, or a case fails. Running out of time or being
// cancelled is not an error. A failing case stops every worker and is
// returned as an error wrapping the *proptest.Failure.
func Run(ctx context.Context, cfg Config, prop proptest.Property, logger hclog.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, errors.Wrap(err, "invalid soak config")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	r := &runner{cfg: cfg, prop: prop, logger: logger}
	release := context.AfterFunc(ctx, r.stop.Stop)
	defer release()

	logger.Info("starting",
		"cases", cfg.Cases, "duration", cfg.Duration, "workers", cfg.Workers,
		"max_cap", cfg.MaxCap, "max_len", cfg.MaxLen, "seed", cfg.Seed)

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < cfg.Workers; w++ {
		id := w
		g.Go(func() error {
			return r.work(id)
		})
	}
	err := g.Wait()

	report := Report{
		Passed:  r.passed.Load(),
		Elapsed: time.Since(start),
	}
	if err != nil {
		errors.As(err, &report.Failure)
		return report, errors.WithMessagef(err, "after %d passing cases", report.Passed)
	}

	logger.Info("finished", "passed", report.Passed, "elapsed", report.Elapsed)
	return report, nil
}

func (r *runner) work(id int) error {
	log := r.logger.Named("worker").With("worker", id)
	p := newProgress(r.cfg.ReportInterval, r.cfg.ReportEvery)

	for !r.stop.Done() {
		i := r.next.Add(1) - 1
		if r.cfg.Cases > 0 && i >= int64(r.cfg.Cases) {
			break
		}

		seed := r.cfg.Seed + i
		if f := proptest.CheckOne(seed, r.cfg.MaxCap, r.cfg.MaxLen, r.prop); f != nil {
			f.Case = int(i)
			r.stop.Stop()
			log.Error("property failed",
				"case", i, "seed", seed,
				"capacity", f.Sequence.Capacity,
				"actions", len(f.Sequence.Actions), "original_actions", f.OriginalLen,
				"error", f.Err)
			return f
		}

		r.passed.Add(1)
		if p.Tick() {
			log.Info("progress", "cases", p.Count(), "passed_total", r.passed.Load())
		}
	}

	log.Debug("stopped", "cases", p.Count())
	return nil
}
