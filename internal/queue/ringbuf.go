package queue

// RingBuffer is a fixed-capacity circular FIFO queue.
//
// Occupancy is kept in count rather than derived from the cursors, so
// read == write is never ambiguous between empty and full and every one of
// the capacity slots is usable.
//
// Slots outside the occupied run [read, read+count) always hold the zero
// value of T. Get and Clear zero a slot as it is vacated, so the buffer
// never keeps a value reachable after handing it back.
type RingBuffer[T any] struct {
	slots []T
	read  int // next slot to read
	write int // next slot to write
	count int
}

// NewRingBuffer creates a RingBuffer holding at most capacity values.
// The slot array is allocated here and never grows.
func NewRingBuffer[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &RingBuffer[T]{
		slots: make([]T, capacity),
	}, nil
}

// MustRingBuffer is like NewRingBuffer but panics if capacity <= 0.
func MustRingBuffer[T any](capacity int) *RingBuffer[T] {
	r, err := NewRingBuffer[T](capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// Put appends v at the write cursor.
// Returns ErrQueueFull, without modifying the buffer, if Size() == Cap().
func (r *RingBuffer[T]) Put(v T) error {
	if r.count == len(r.slots) {
		return ErrQueueFull
	}

	r.slots[r.write] = v
	r.write = r.advance(r.write)
	r.count++

	return nil
}

// Get removes and returns the value at the read cursor.
// Returns the zero value and ErrQueueEmpty if the buffer is empty.
func (r *RingBuffer[T]) Get() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrQueueEmpty
	}

	v := r.slots[r.read]
	r.slots[r.read] = zero
	r.read = r.advance(r.read)
	r.count--

	return v, nil
}

// Size returns the number of values currently held.
func (r *RingBuffer[T]) Size() int {
	return r.count
}

// Cap returns the capacity of the buffer.
func (r *RingBuffer[T]) Cap() int {
	return len(r.slots)
}

// Drain removes every held value in FIFO order, passing each to fn
// exactly once. fn may be nil. Returns the number of values removed.
//
// Use Drain when the values own something that must be released
// (connections, pooled buffers) before the buffer is dropped.
func (r *RingBuffer[T]) Drain(fn func(T)) int {
	n := r.count
	for r.count > 0 {
		v, _ := r.Get()
		if fn != nil {
			fn(v)
		}
	}
	return n
}

// Clear discards every held value and resets the cursors.
// Only occupied slots are touched.
func (r *RingBuffer[T]) Clear() {
	var zero T
	for i, idx := 0, r.read; i < r.count; i++ {
		r.slots[idx] = zero
		idx = r.advance(idx)
	}
	r.read, r.write, r.count = 0, 0, 0
}

func (r *RingBuffer[T]) advance(i int) int {
	i++
	if i == len(r.slots) {
		return 0
	}
	return i
}
