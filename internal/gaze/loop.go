// Package gaze drives the wandering eye: it picks random targets and
// timings, arms one deferred callback at a time and publishes each move
// to a Cell that the renderer animates.
package gaze

import (
	"errors"
	"fmt"
	"log"
	"time"
)

var ErrNotAnimating = errors.New("no transition in progress")

type Phase int

const (
	// Idle means a deferred callback is armed (or scheduling failed).
	Idle Phase = iota
	// Animating means the renderer is playing a transition.
	Animating
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Stats are kept for the debug overlay and the trace log.
type Stats struct {
	Cycles     int
	MinDelay   time.Duration
	MaxDelay   time.Duration
	LastTarget Target
	LastDelay  time.Duration
}

type Loop struct {
	picker *Picker
	cell   *Cell
	sched  *Scheduler
	logger *log.Logger

	phase   Phase
	started bool
	stats   Stats
}

func NewLoop(picker *Picker, cell *Cell, sched *Scheduler, logger *log.Logger) *Loop {
	return &Loop{
		picker: picker,
		cell:   cell,
		sched:  sched,
		logger: logger,
	}
}

// Start publishes the zero target with a random duration. Calling it again
// is a no-op.
func (l *Loop) Start() {
	if l.started {
		return
	}
	l.started = true
	l.phase = Animating
	l.cell.Publish(Move{Duration: l.picker.NextDuration()})
}

// TransitionDone is the renderer's completion signal. It picks the next
// move and arms exactly one callback that publishes it.
func (l *Loop) TransitionDone(now time.Time) error {
	if l.phase != Animating {
		return ErrNotAnimating
	}

	move := Move{Target: l.picker.NextTarget()}
	move.Duration = l.picker.NextDuration()
	delay := l.picker.NextDelay()

	l.phase = Idle
	if err := l.sched.Post(now, delay, func() { l.apply(move) }); err != nil {
		l.logger.Printf("schedule %v after %v: %v", move.Target, delay, err)
		return fmt.Errorf("schedule next move: %w", err)
	}

	l.record(move.Target, delay)
	l.logger.Printf("next %v in %v over %v, smallest delay so far %v",
		move.Target, delay, move.Duration, l.stats.MinDelay)
	return nil
}

// Tick runs the deferred callback if it is due.
func (l *Loop) Tick(now time.Time) bool {
	return l.sched.RunDue(now)
}

// Stop disarms the pending callback.
func (l *Loop) Stop() {
	l.sched.Cancel()
	l.phase = Idle
}

func (l *Loop) apply(m Move) {
	l.phase = Animating
	l.cell.Publish(m)
}

func (l *Loop) record(t Target, delay time.Duration) {
	l.stats.Cycles++
	l.stats.LastTarget = t
	l.stats.LastDelay = delay
	if l.stats.Cycles == 1 || delay < l.stats.MinDelay {
		l.stats.MinDelay = delay
	}
	if delay > l.stats.MaxDelay {
		l.stats.MaxDelay = delay
	}
}

func (l *Loop) Phase() Phase { return l.phase }

func (l *Loop) Stats() Stats { return l.stats }

// NextIn returns the time left before the armed move fires.
func (l *Loop) NextIn(now time.Time) (time.Duration, bool) {
	due, ok := l.sched.Due()
	if !ok {
		return 0, false
	}
	if d := due.Sub(now); d > 0 {
		return d, true
	}
	return 0, true
}
