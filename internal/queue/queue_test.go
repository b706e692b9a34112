package queue_test

import (
	"errors"
	"testing"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

func testQueue[T comparable](t *testing.T, q queue.Queue[T], val T, name string) {
	t.Helper()

	// Empty queue returns ErrQueueEmpty
	if _, err := q.Get(); !errors.Is(err, queue.ErrQueueEmpty) {
		t.Errorf("%s: expected Get() = ErrQueueEmpty on empty queue, got %v", name, err)
	}

	// Put succeeds
	if err := q.Put(val); err != nil {
		t.Errorf("%s: expected Put() = nil, got %v", name, err)
	}

	// Get returns put value
	got, err := q.Get()
	if err != nil {
		t.Errorf("%s: expected Get() = nil after Put(), got %v", name, err)
	}
	if got != val {
		t.Errorf("%s: expected %v, got %v", name, val, got)
	}

	// Queue is empty again
	if _, err := q.Get(); !errors.Is(err, queue.ErrQueueEmpty) {
		t.Errorf("%s: expected Get() = ErrQueueEmpty after draining, got %v", name, err)
	}
}

func newRing(t *testing.T, capacity int) *queue.RingBuffer[int] {
	t.Helper()
	q, err := queue.NewRingBuffer[int](capacity)
	if err != nil {
		t.Fatalf("NewRingBuffer(%d): %v", capacity, err)
	}
	return q
}

func newChannel(t *testing.T, capacity int) *queue.ChannelQueue[int] {
	t.Helper()
	q, err := queue.NewChannel[int](capacity)
	if err != nil {
		t.Fatalf("NewChannel(%d): %v", capacity, err)
	}
	return q
}

func TestChannelQueue(t *testing.T) {
	testQueue(t, newChannel(t, 8), 42, "ChannelQueue")
}

func TestRingBuffer(t *testing.T) {
	testQueue(t, newRing(t, 8), 42, "RingBuffer")
}

func TestRingBuffer_Full(t *testing.T) {
	q := newRing(t, 2)
	if err := q.Put(1); err != nil {
		t.Errorf("expected Put(1) = nil, got %v", err)
	}
	if err := q.Put(2); err != nil {
		t.Errorf("expected Put(2) = nil, got %v", err)
	}
	if err := q.Put(3); !errors.Is(err, queue.ErrQueueFull) {
		t.Errorf("expected Put(3) = ErrQueueFull on full queue, got %v", err)
	}
}

func TestRingBuffer_FIFO(t *testing.T) {
	q := newRing(t, 8)

	for i := 0; i < 5; i++ {
		if err := q.Put(i); err != nil {
			t.Fatalf("expected Put(%d) = nil, got %v", i, err)
		}
	}

	for i := 0; i < 5; i++ {
		got, err := q.Get()
		if err != nil {
			t.Fatalf("expected Get() = nil for item %d, got %v", i, err)
		}
		if got != i {
			t.Errorf("FIFO violation: expected %d, got %d", i, got)
		}
	}
}

func TestRingBuffer_SizeCap(t *testing.T) {
	q := newRing(t, 8)

	if q.Size() != 0 {
		t.Errorf("expected Size() = 0, got %d", q.Size())
	}
	if q.Cap() != 8 {
		t.Errorf("expected Cap() = 8, got %d", q.Cap())
	}

	_ = q.Put(1)
	_ = q.Put(2)

	if q.Size() != 2 {
		t.Errorf("expected Size() = 2, got %d", q.Size())
	}
}

func TestRingBuffer_ExactCapacity(t *testing.T) {
	// Capacity is not rounded and no slot is reserved.
	for _, capacity := range []int{1, 5, 7, 8} {
		q := newRing(t, capacity)
		if q.Cap() != capacity {
			t.Errorf("expected Cap() = %d, got %d", capacity, q.Cap())
		}
		for i := 0; i < capacity; i++ {
			if err := q.Put(i); err != nil {
				t.Fatalf("cap %d: Put(%d) = %v", capacity, i, err)
			}
		}
		if q.Size() != capacity {
			t.Errorf("cap %d: expected Size() = %d, got %d", capacity, capacity, q.Size())
		}
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
	}{
		{"zero", 0},
		{"negative", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := queue.NewRingBuffer[string](tc.capacity)
			if !errors.Is(err, queue.ErrInvalidCapacity) {
				t.Errorf("NewRingBuffer: expected ErrInvalidCapacity, got %v", err)
			}
			if r != nil {
				t.Error("NewRingBuffer: expected nil buffer on error")
			}

			c, err := queue.NewChannel[string](tc.capacity)
			if !errors.Is(err, queue.ErrInvalidCapacity) {
				t.Errorf("NewChannel: expected ErrInvalidCapacity, got %v", err)
			}
			if c != nil {
				t.Error("NewChannel: expected nil queue on error")
			}
		})
	}
}

func TestMustRingBuffer_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected MustRingBuffer(0) to panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, queue.ErrInvalidCapacity) {
			t.Errorf("expected panic with ErrInvalidCapacity, got %v", r)
		}
	}()
	queue.MustRingBuffer[uint](0)
}

// Test that both implementations satisfy the interface
func TestQueueInterface(t *testing.T) {
	testCases := []struct {
		name string
		q    queue.Queue[int]
	}{
		{"Channel", newChannel(t, 8)},
		{"RingBuffer", newRing(t, 8)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testQueue(t, tc.q, 42, tc.name)
		})
	}
}
