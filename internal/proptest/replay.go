package proptest

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

// Sentinel is the value every Put pushes during replay.
const Sentinel = 9

// SizeMismatchError reports a Size action whose observed size differs
// from the tracked reference count.
type SizeMismatchError struct {
	Step     int
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch at step %d: Expected '%d', but got '%d'", e.Step, e.Expected, e.Actual)
}

// Replay drives q through s.Actions, tracking occupancy independently.
//
// It returns a *SizeMismatchError at the first Size action where
// q.Size() disagrees with the tracked count. A Put or Get rejected by q is
// returned wrapped with its step; for a Valid sequence that means q itself
// is wrong about being full or empty.
func Replay(q queue.Queue[int], s Sequence) error {
	size := 0
	for i, a := range s.Actions {
		switch a {
		case Put:
			if err := q.Put(Sentinel); err != nil {
				return errors.Wrapf(err, "step %d: %s with tracked size %d", i, a, size)
			}
			size++
		case Get:
			if _, err := q.Get(); err != nil {
				return errors.Wrapf(err, "step %d: %s with tracked size %d", i, a, size)
			}
			size--
		case Size:
			if got := q.Size(); got != size {
				return &SizeMismatchError{Step: i, Expected: size, Actual: got}
			}
		default:
			return errors.Errorf("step %d: unknown %s", i, a)
		}
	}
	return nil
}

// ReplayRing constructs a RingBuffer with s.Capacity and replays s on it.
func ReplayRing(s Sequence) error {
	q, err := queue.NewRingBuffer[int](s.Capacity)
	if err != nil {
		return errors.Wrapf(err, "capacity %d", s.Capacity)
	}
	return Replay(q, s)
}

// ReplayChannel is ReplayRing for the channel-backed reference queue.
func ReplayChannel(s Sequence) error {
	q, err := queue.NewChannel[int](s.Capacity)
	if err != nil {
		return errors.Wrapf(err, "capacity %d", s.Capacity)
	}
	return Replay(q, s)
}
