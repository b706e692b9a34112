package soak

import (
	"testing"
	"time"
)

func TestProgress_Every(t *testing.T) {
	p := newProgress(time.Nanosecond, 10)
	time.Sleep(time.Millisecond)

	// Should not tick for the first 9 calls (not checking time)
	for i := 0; i < 9; i++ {
		if p.Tick() {
			t.Errorf("expected Tick() = false on call %d", i+1)
		}
	}

	// 10th call checks time; the interval has passed
	if !p.Tick() {
		t.Error("expected Tick() = true on 10th call")
	}
	if p.Count() != 10 {
		t.Errorf("expected Count() = 10, got %d", p.Count())
	}
}

func TestProgress_Disabled(t *testing.T) {
	p := newProgress(0, 1)
	for i := 0; i < 100; i++ {
		if p.Tick() {
			t.Fatal("expected Tick() = false with zero interval")
		}
	}
}

func TestProgress_EveryFloor(t *testing.T) {
	p := newProgress(time.Hour, 0)
	if p.every != 1 {
		t.Errorf("expected every = 1, got %d", p.every)
	}
}

func TestStopFlag(t *testing.T) {
	var s stopFlag
	if s.Done() {
		t.Error("expected Done() = false before Stop()")
	}

	s.Stop()
	if !s.Done() {
		t.Error("expected Done() = true after Stop()")
	}

	// Verify idempotent
	s.Stop()
	if !s.Done() {
		t.Error("expected Done() = true after second Stop()")
	}
}
