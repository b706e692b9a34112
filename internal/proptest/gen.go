package proptest

import (
	"fmt"
	"math/rand"
	"reflect"
)

const (
	// DefaultMaxCap is the largest capacity generated by default.
	DefaultMaxCap = 50

	// DefaultMaxLen is the longest action sequence generated by default.
	DefaultMaxLen = 1000
)

// Sequence is one test case: the capacity to construct the queue with and
// the actions to replay against it.
type Sequence struct {
	Capacity int
	Actions  []Action
}

func (s Sequence) String() string {
	return fmt.Sprintf("Sequence{Capacity: %d, Actions: %v}", s.Capacity, s.Actions)
}

// Generate implements quick.Generator using DefaultMaxCap and DefaultMaxLen.
// The size hint is ignored; the bounds are part of the case definition.
func (Sequence) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(GenSequence(r, DefaultMaxCap, DefaultMaxLen))
}

// GenCapacity returns a capacity uniformly distributed in [1, maxCap].
// maxCap values below 1 are treated as 1.
func GenCapacity(r *rand.Rand, maxCap int) int {
	if maxCap < 1 {
		maxCap = 1
	}
	return r.Intn(maxCap) + 1
}

// GenActions returns n actions that are legal to replay, in order, against
// an initially empty queue of the given capacity. Each action is proposed
// uniformly among Put, Get and Size and then passed through Constrain.
func GenActions(r *rand.Rand, capacity, n int) []Action {
	actions := make([]Action, 0, n)
	occupancy := 0
	for i := 0; i < n; i++ {
		var a Action
		a, occupancy = Constrain(Action(r.Intn(3)), occupancy, capacity)
		actions = append(actions, a)
	}
	return actions
}

// GenSequence draws a capacity in [1, maxCap], a length in [1, maxLen] and
// a legal action sequence of that length.
func GenSequence(r *rand.Rand, maxCap, maxLen int) Sequence {
	capacity := GenCapacity(r, maxCap)
	if maxLen < 1 {
		maxLen = 1
	}
	n := r.Intn(maxLen) + 1
	return Sequence{
		Capacity: capacity,
		Actions:  GenActions(r, capacity, n),
	}
}

// Valid reports whether replaying s never puts into a full queue or gets
// from an empty one.
func Valid(s Sequence) bool {
	if s.Capacity < 1 {
		return false
	}
	occupancy := 0
	for _, a := range s.Actions {
		switch a {
		case Put:
			if occupancy == s.Capacity {
				return false
			}
			occupancy++
		case Get:
			if occupancy == 0 {
				return false
			}
			occupancy--
		case Size:
		default:
			return false
		}
	}
	return true
}
