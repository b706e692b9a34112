// Package proptest checks queue.Queue implementations against randomly
// generated, always-legal sequences of operations.
//
// A case is a Sequence: a capacity plus a list of Actions. Generation runs
// every proposed action through Constrain, so replaying a Sequence never
// puts into a full queue or gets from an empty one. Replay then compares
// the queue's Size() with an independently tracked count at every Size
// action.
//
// Typical use from a test:
//
//	if f := proptest.Check(proptest.DefaultConfig(), proptest.ReplayRing); f != nil {
//		t.Fatal(f)
//	}
package proptest

import "fmt"

// Action is one harness-driven queue operation.
type Action uint8

const (
	Put Action = iota
	Get
	Size
)

var actionNames = [...]string{
	Put:  "Put",
	Get:  "Get",
	Size: "Size",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Constrain maps a proposed action to a legal one for a queue holding
// occupancy values out of capacity, and returns the occupancy after it.
//
// A Put on a full queue becomes a Get, a Get on an empty queue becomes a
// Put. Size is always legal and leaves occupancy alone. capacity must be
// at least 1, which guarantees one of Put/Get is always legal.
func Constrain(a Action, occupancy, capacity int) (Action, int) {
	switch a {
	case Put:
		if occupancy < capacity {
			return Put, occupancy + 1
		}
		return Get, occupancy - 1
	case Get:
		if occupancy > 0 {
			return Get, occupancy - 1
		}
		return Put, occupancy + 1
	default:
		return Size, occupancy
	}
}
