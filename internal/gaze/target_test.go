package gaze

import (
	"testing"
	"time"

	"github.com/iburimskiy/eyeball/internal/config"
	"github.com/iburimskiy/eyeball/internal/screen"
)

func TestRangeFor(t *testing.T) {
	r := RangeFor(screen.Bounds{Width: 1000, Height: 2000})
	if r.BoundX != 450 || r.BoundY != 900 {
		t.Fatalf("expected 450x900, got %dx%d", r.BoundX, r.BoundY)
	}

	tests := []struct {
		target Target
		want   bool
	}{
		{Target{450, 900, 60}, true},
		{Target{-450, -900, -60}, true},
		{Target{0, 0, 0}, true},
		{Target{451, 0, 0}, false},
		{Target{0, -901, 0}, false},
		{Target{0, 0, 61}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.target); got != tt.want {
			t.Errorf("Contains(%v): expected %v, got %v", tt.target, tt.want, got)
		}
	}
}

func TestRangeForOddSize(t *testing.T) {
	// 1081/2 truncates to 540 before scaling
	r := RangeFor(screen.Bounds{Width: 1081, Height: 3})
	if r.BoundX != 486 || r.BoundY != 0 {
		t.Errorf("expected 486x0, got %dx%d", r.BoundX, r.BoundY)
	}
}

func TestPickerStaysInRange(t *testing.T) {
	r := RangeFor(screen.Bounds{Width: 1000, Height: 2000})
	p := NewPicker(r, config.DefaultTiming(), 7)

	var sawMinAngle, sawMaxAngle bool
	for i := 0; i < 20000; i++ {
		tg := p.NextTarget()
		if !r.Contains(tg) {
			t.Fatalf("target %v out of range %+v", tg, r)
		}
		if tg.Angle == -60 {
			sawMinAngle = true
		}
		if tg.Angle == 60 {
			sawMaxAngle = true
		}

		if d := p.NextDuration(); d < 20*time.Millisecond || d > 500*time.Millisecond {
			t.Fatalf("duration %v out of [20ms, 500ms]", d)
		}
		if d := p.NextDelay(); d < time.Millisecond || d > 5*time.Second {
			t.Fatalf("delay %v out of [1ms, 5s]", d)
		}
	}
	if !sawMinAngle || !sawMaxAngle {
		t.Errorf("expected both angle limits to be reachable, min=%v max=%v", sawMinAngle, sawMaxAngle)
	}
}

func TestPickerDeterministicSeed(t *testing.T) {
	r := Range{BoundX: 100, BoundY: 100, MaxAngle: 60}
	a := NewPicker(r, config.DefaultTiming(), 99)
	b := NewPicker(r, config.DefaultTiming(), 99)
	for i := 0; i < 50; i++ {
		if x, y := a.NextTarget(), b.NextTarget(); x != y {
			t.Fatalf("step %d: expected equal targets, got %v and %v", i, x, y)
		}
	}
}

func TestPickerDegenerateRange(t *testing.T) {
	timing := config.Timing{
		MinDuration: 30 * time.Millisecond, MaxDuration: 30 * time.Millisecond,
		MinDelay: 0, MaxDelay: 0,
	}
	p := NewPicker(Range{}, timing, 1)
	if tg := p.NextTarget(); tg != (Target{}) {
		t.Errorf("expected zero target, got %v", tg)
	}
	if d := p.NextDuration(); d != 30*time.Millisecond {
		t.Errorf("expected 30ms, got %v", d)
	}
	if d := p.NextDelay(); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}
