// Package anim interpolates the eye's displayed pose toward a target.
package anim

import "time"

// Pose is an offset from screen centre in pixels plus rotation in degrees.
type Pose struct {
	X     float64
	Y     float64
	Angle float64
}

// Lerp returns the linear blend of p and q at t in [0, 1].
func (p Pose) Lerp(q Pose, t float64) Pose {
	return Pose{
		X:     p.X + (q.X-p.X)*t,
		Y:     p.Y + (q.Y-p.Y)*t,
		Angle: p.Angle + (q.Angle-p.Angle)*t,
	}
}

// Transition is a linear tween shared by x, y and angle.
type Transition struct {
	From     Pose
	To       Pose
	Start    time.Time
	Duration time.Duration
}

// Progress is the elapsed fraction, clamped to [0, 1].
func (t Transition) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(t.Start)) / float64(t.Duration))
}

func (t Transition) At(now time.Time) (Pose, bool) {
	p := t.Progress(now)
	if p >= 1 {
		return t.To, true
	}
	return t.From.Lerp(t.To, p), false
}

// Animator plays one transition at a time and reports each completion once.
type Animator struct {
	pose   Pose
	active bool
	tr     Transition
}

// Retarget starts a transition from the currently displayed pose. A
// transition already in flight is replaced.
func (a *Animator) Retarget(to Pose, d time.Duration, now time.Time) {
	a.tr = Transition{From: a.pose, To: to, Start: now, Duration: d}
	a.active = true
}

// Advance moves the displayed pose to now. It returns true on the frame
// the active transition finishes and false otherwise.
func (a *Animator) Advance(now time.Time) bool {
	if !a.active {
		return false
	}
	pose, done := a.tr.At(now)
	a.pose = pose
	if done {
		a.active = false
	}
	return done
}

func (a *Animator) Pose() Pose { return a.pose }

func (a *Animator) Active() bool { return a.active }

func (a *Animator) Transition() (Transition, bool) { return a.tr, a.active }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
