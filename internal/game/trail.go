package game

import "github.com/iburimskiy/eyeball/internal/gaze"

// trail records the last N targets in a ring buffer so the debug overlay
// can show where the eye has been looking.
type trail struct {
	buffer    []gaze.Target
	nextIndex int
	count     int
}

func newTrail(ringSize int) *trail {
	return &trail{
		buffer: make([]gaze.Target, ringSize),
	}
}

func (t *trail) push(tg gaze.Target) {
	if len(t.buffer) == 0 {
		return
	}
	t.buffer[t.nextIndex] = tg
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.count < len(t.buffer) {
		t.count++
	}
}

// snapshot returns up to the last n targets (most recent last).
func (t *trail) snapshot(n int) []gaze.Target {
	if n > t.count {
		n = t.count
	}
	out := make([]gaze.Target, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out = append(out, t.buffer[idx])
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
