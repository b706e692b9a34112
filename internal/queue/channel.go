package queue

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach. Each Put/Get performs
// a non-blocking channel operation via select with default.
// It serves as the reference implementation RingBuffer is checked
// and measured against.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with the specified capacity.
func NewChannel[T any](capacity int) (*ChannelQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &ChannelQueue[T]{
		ch: make(chan T, capacity),
	}, nil
}

// Put adds an item to the queue.
// Returns ErrQueueFull if the queue is full (non-blocking).
func (q *ChannelQueue[T]) Put(v T) error {
	select {
	case q.ch <- v:
		return nil
	default:
		return ErrQueueFull
	}
}

// Get removes and returns an item from the queue.
// Returns ErrQueueEmpty if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) Get() (T, error) {
	select {
	case v := <-q.ch:
		return v, nil
	default:
		var zero T
		return zero, ErrQueueEmpty
	}
}

// Size returns the current number of items in the queue.
func (q *ChannelQueue[T]) Size() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
