// Package queue provides fixed-capacity FIFO queues.
//
// This package offers two implementations of the Queue interface:
//   - RingBuffer: circular buffer over a slot array allocated once
//   - ChannelQueue: buffered channel used as a reference implementation
//
// # Ownership (IMPORTANT)
//
// A queue is owned by exactly ONE goroutine. Neither implementation takes
// locks; sharing a RingBuffer between goroutines is a data race.
//
// Put on a full queue and Get on an empty queue are caller errors. They fail
// immediately with ErrQueueFull / ErrQueueEmpty and leave the queue untouched.
// Nothing blocks and nothing is overwritten.
package queue

import "errors"

var (
	// ErrInvalidCapacity is returned when constructing a queue with capacity <= 0.
	ErrInvalidCapacity = errors.New("queue: capacity must be greater than zero")

	// ErrQueueFull is returned by Put when Size() == Cap().
	ErrQueueFull = errors.New("queue: full")

	// ErrQueueEmpty is returned by Get when Size() == 0.
	ErrQueueEmpty = errors.New("queue: empty")
)

// Queue is a single-owner, fixed-capacity FIFO queue.
//
// Implementations are non-blocking: Put returns ErrQueueFull if full,
// Get returns ErrQueueEmpty if empty.
type Queue[T any] interface {
	// Put appends v to the tail of the queue.
	Put(v T) error

	// Get removes and returns the value at the head of the queue.
	Get() (T, error)

	// Size returns the number of values currently held.
	Size() int

	// Cap returns the fixed capacity.
	Cap() int
}
