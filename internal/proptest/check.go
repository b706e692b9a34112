package proptest

import (
	"fmt"
	"math/rand"
	"sort"
)

// Property is checked against one generated Sequence. A nil error passes.
type Property func(Sequence) error

// Config bounds a Check run.
type Config struct {
	Cases  int   // number of generated cases
	MaxCap int   // capacities are drawn from [1, MaxCap]
	MaxLen int   // sequence lengths are drawn from [1, MaxLen]
	Seed   int64 // case i is generated from Seed+i
}

// DefaultConfig returns 100 cases with the default bounds and seed 1.
func DefaultConfig() Config {
	return Config{
		Cases:  100,
		MaxCap: DefaultMaxCap,
		MaxLen: DefaultMaxLen,
		Seed:   1,
	}
}

// Failure describes a failing case after shrinking.
type Failure struct {
	Case        int      // index of the case within the run
	Seed        int64    // seed that regenerates the original sequence
	OriginalLen int      // action count before shrinking
	Sequence    Sequence // shortest failing prefix found
	Err         error    // error returned by the property on Sequence
}

func (f *Failure) Error() string {
	return fmt.Sprintf("case %d (seed %d): capacity %d, %d of %d actions: %v",
		f.Case, f.Seed, f.Sequence.Capacity, len(f.Sequence.Actions), f.OriginalLen, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Check runs prop against cfg.Cases generated sequences and returns the
// first failure, shrunk, or nil if every case passed.
func Check(cfg Config, prop Property) *Failure {
	for i := 0; i < cfg.Cases; i++ {
		if f := CheckOne(cfg.Seed+int64(i), cfg.MaxCap, cfg.MaxLen, prop); f != nil {
			f.Case = i
			return f
		}
	}
	return nil
}

// CheckOne generates a single sequence from seed and checks prop on it.
func CheckOne(seed int64, maxCap, maxLen int, prop Property) *Failure {
	s := GenSequence(rand.New(rand.NewSource(seed)), maxCap, maxLen)
	err := prop(s)
	if err == nil {
		return nil
	}

	shrunk, shrunkErr := Shrink(s, prop)
	return &Failure{
		Seed:        seed,
		OriginalLen: len(s.Actions),
		Sequence:    shrunk,
		Err:         shrunkErr,
	}
}

// Shrink returns the shortest prefix of a failing sequence that still fails,
// together with the property's error on it. Every prefix of a legal sequence
// is legal, and a deterministic replay that fails at step k fails on every
// prefix longer than k, so a binary search over prefix length suffices.
func Shrink(s Sequence, prop Property) (Sequence, error) {
	prefix := func(n int) Sequence {
		return Sequence{Capacity: s.Capacity, Actions: s.Actions[:n:n]}
	}

	n := sort.Search(len(s.Actions), func(n int) bool {
		return prop(prefix(n)) != nil
	})

	shrunk := prefix(n)
	if err := prop(shrunk); err != nil {
		return shrunk, err
	}
	// Non-deterministic property; keep what we were given.
	return s, prop(s)
}
