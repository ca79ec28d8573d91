package gaze

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/eyeball/internal/config"
	"github.com/iburimskiy/eyeball/internal/screen"
)

// Target is the resting offset from screen centre and the rotation in degrees.
type Target struct {
	X     int
	Y     int
	Angle int
}

func (t Target) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.X, t.Y, t.Angle)
}

// Move is what the loop publishes: where to go and how long to take.
type Move struct {
	Target   Target
	Duration time.Duration
}

// Range is the set of valid targets for a screen.
type Range struct {
	BoundX   int
	BoundY   int
	MaxAngle int
}

// RangeFor derives the wander range from the screen size. The half-size is
// truncated before scaling, so 1000x2000 gives 450x900.
func RangeFor(b screen.Bounds) Range {
	return Range{
		BoundX:   int(float64(b.Width/2) * config.BoundFraction),
		BoundY:   int(float64(b.Height/2) * config.BoundFraction),
		MaxAngle: config.MaxAngle,
	}
}

// Contains reports whether t lies within the range, bounds inclusive.
func (r Range) Contains(t Target) bool {
	return abs(t.X) <= r.BoundX && abs(t.Y) <= r.BoundY && abs(t.Angle) <= r.MaxAngle
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Picker draws targets and timings uniformly from inclusive ranges.
type Picker struct {
	rng    *rand.Rand
	rang   Range
	timing config.Timing
}

// NewPicker seeds a PCG source. A zero seed picks one from the clock.
func NewPicker(r Range, timing config.Timing, seed uint64) *Picker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Picker{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		rang:   r,
		timing: timing,
	}
}

func (p *Picker) Range() Range { return p.rang }

func (p *Picker) NextTarget() Target {
	return Target{
		X:     p.between(-p.rang.BoundX, p.rang.BoundX),
		Y:     p.between(-p.rang.BoundY, p.rang.BoundY),
		Angle: p.between(-p.rang.MaxAngle, p.rang.MaxAngle),
	}
}

func (p *Picker) NextDuration() time.Duration {
	return p.durationBetween(p.timing.MinDuration, p.timing.MaxDuration)
}

func (p *Picker) NextDelay() time.Duration {
	return p.durationBetween(p.timing.MinDelay, p.timing.MaxDelay)
}

// between returns a uniform int in [lo, hi].
func (p *Picker) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.IntN(hi-lo+1)
}

// durationBetween works in whole milliseconds.
func (p *Picker) durationBetween(lo, hi time.Duration) time.Duration {
	ms := p.between(int(lo.Milliseconds()), int(hi.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}
