// Command ringbench times put+get on RingBuffer against the channel queue.
//
// Usage:
//
//	go run ./cmd/ringbench -n 10000000 -size 50
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "queue capacity")
	flag.Parse()

	ring, err := queue.NewRingBuffer[int](*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringbench: %v\n", err)
		os.Exit(2)
	}
	ch, err := queue.NewChannel[int](*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringbench: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Benchmarking fixed-capacity queues (%d iterations, size=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	chDur := run(ch, *iterations)
	ringDur := run(ring, *iterations)

	// Results
	chPerOp := float64(chDur.Nanoseconds()) / float64(*iterations)
	ringPerOp := float64(ringDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults (put + get per iteration):\n")
	fmt.Printf("  Channel:     %v (%.2f ns/op)\n", chDur, chPerOp)
	fmt.Printf("  RingBuffer:  %v (%.2f ns/op)\n", ringDur, ringPerOp)

	if ringPerOp < chPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (RingBuffer faster)\n", chPerOp/ringPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (Channel faster)\n", ringPerOp/chPerOp)
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Channel:     %.2f M ops/sec\n", 1000/chPerOp)
	fmt.Printf("  RingBuffer:  %.2f M ops/sec\n", 1000/ringPerOp)
}

// run keeps the queue half full so the cursors wrap during the loop.
func run(q queue.Queue[int], iterations int) time.Duration {
	for i := 0; i < q.Cap()/2; i++ {
		_ = q.Put(i)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_ = q.Put(i)
		_, _ = q.Get()
	}
	return time.Since(start)
}
