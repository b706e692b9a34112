package queue

// Slots exposes the backing array so tests can check that vacated slots
// hold the zero value.
func (r *RingBuffer[T]) Slots() []T {
	return r.slots
}
