// Command ringcheck replays randomly generated queue operation sequences
// against RingBuffer (or the channel queue) and reports the first case
// whose Size disagrees with the expected occupancy.
//
// Usage:
//
//	go run ./cmd/ringcheck -cases 100000 -workers 8
//	go run ./cmd/ringcheck -cases 0 -duration 10m -report-interval 30s
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/randomizedcoder/ringqueue/internal/proptest"
	"github.com/randomizedcoder/ringqueue/internal/soak"
)

func main() {
	def := soak.DefaultConfig()

	cases := flag.Int("cases", def.Cases, "number of cases (0 = until -duration)")
	maxCap := flag.Int("max-cap", def.MaxCap, "largest generated capacity")
	maxLen := flag.Int("max-len", def.MaxLen, "longest generated action sequence")
	seed := flag.Int64("seed", 0, "base seed (0 = derive from the clock)")
	workers := flag.Int("workers", def.Workers, "number of workers")
	duration := flag.Duration("duration", 0, "stop after this long (0 = no limit)")
	reportEvery := flag.Int("report-every", def.ReportEvery, "check the progress clock every N cases")
	reportInterval := flag.Duration("report-interval", def.ReportInterval, "progress log interval (0 = off)")
	impl := flag.String("queue", "ring", "queue under test: ring or channel")
	logLevel := flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "ringcheck",
		Level:      hclog.LevelFromString(*logLevel),
		JSONFormat: *logJSON,
		Output:     os.Stderr,
	})

	var prop proptest.Property
	switch *impl {
	case "ring":
		prop = proptest.ReplayRing
	case "channel":
		prop = proptest.ReplayChannel
	default:
		logger.Error("unknown queue", "queue", *impl)
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := soak.Config{
		Cases:          *cases,
		MaxCap:         *maxCap,
		MaxLen:         *maxLen,
		Seed:           *seed,
		Workers:        *workers,
		Duration:       *duration,
		ReportEvery:    *reportEvery,
		ReportInterval: *reportInterval,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := soak.Run(ctx, cfg, prop, logger.With("queue", *impl))
	if err != nil {
		if f := report.Failure; f != nil {
			logger.Error("FAIL", "case", f.Case, "seed", f.Seed, "error", f.Err)
			fmt.Fprintf(os.Stderr, "\nShrunk sequence (%d of %d actions):\n  %v\n",
				len(f.Sequence.Actions), f.OriginalLen, f.Sequence)
			fmt.Fprintf(os.Stderr, "\nReproduce with: -seed %d -cases 1 -workers 1 -max-cap %d -max-len %d -queue %s\n",
				f.Seed, cfg.MaxCap, cfg.MaxLen, *impl)
		} else {
			logger.Error("run failed", "error", err)
		}
		stop()
		os.Exit(1)
	}

	fmt.Printf("OK: %d cases passed in %v (seed %d)\n", report.Passed, report.Elapsed, cfg.Seed)
}
