package gaze

import (
	"errors"
	"time"
)

var (
	ErrAlreadyArmed  = errors.New("deferred callback already armed")
	ErrNilCallback   = errors.New("nil callback")
	ErrNegativeDelay = errors.New("negative delay")
)

// Scheduler is a one-shot deferred callback slot drained by the UI loop.
// At most one callback is armed at a time; Post never retries.
type Scheduler struct {
	fn    func()
	due   time.Time
	armed bool
}

// Post arms fn to run once RunDue is called at or after now+delay.
func (s *Scheduler) Post(now time.Time, delay time.Duration, fn func()) error {
	switch {
	case fn == nil:
		return ErrNilCallback
	case delay < 0:
		return ErrNegativeDelay
	case s.armed:
		return ErrAlreadyArmed
	}
	s.fn = fn
	s.due = now.Add(delay)
	s.armed = true
	return nil
}

// RunDue fires the armed callback if it is due. The slot is cleared before
// the callback runs so the callback may post again.
func (s *Scheduler) RunDue(now time.Time) bool {
	if !s.armed || now.Before(s.due) {
		return false
	}
	fn := s.fn
	s.fn = nil
	s.armed = false
	fn()
	return true
}

func (s *Scheduler) Pending() bool { return s.armed }

// Due returns when the armed callback fires; ok is false when nothing is armed.
func (s *Scheduler) Due() (time.Time, bool) {
	return s.due, s.armed
}

func (s *Scheduler) Cancel() {
	s.fn = nil
	s.armed = false
}
