package sound

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer, chunk int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSweepLength(t *testing.T) {
	s := DefaultSweep()
	want := s.SampleRate.N(s.Length)

	for _, chunk := range []int{1, 64, 512, want + 10} {
		got := drain(s.Streamer(), chunk)
		if len(got) != want {
			t.Errorf("chunk %d: expected %d samples, got %d", chunk, want, len(got))
		}
	}
}

func TestSweepEnvelope(t *testing.T) {
	s := Sweep{
		SampleRate: beep.SampleRate(8000),
		Length:     100 * time.Millisecond,
		StartHz:    440,
		EndHz:      220,
		Attack:     0.2,
		Release:    0.5,
	}
	out := drain(s.Streamer(), 256)
	if len(out) != 800 {
		t.Fatalf("expected 800 samples, got %d", len(out))
	}
	if out[0][0] != 0 {
		t.Errorf("expected silent first sample, got %f", out[0][0])
	}
	for i, v := range out {
		if math.Abs(v[0]) > 1 || v[0] != v[1] {
			t.Fatalf("sample %d: unexpected value %v", i, v)
		}
	}
	if last := math.Abs(out[len(out)-1][0]); last > 0.01 {
		t.Errorf("expected tail to fade out, got %f", last)
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	var nilPlayer *Player
	if err := nilPlayer.Cue(); err != nil {
		t.Errorf("nil player should be silent, got %v", err)
	}
	if !nilPlayer.Muted() {
		t.Error("nil player should report muted")
	}

	p := &Player{sweep: DefaultSweep()}
	if err := p.Cue(); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
	if !p.ToggleMute() {
		t.Error("expected muted after toggle")
	}
	if err := p.Cue(); err != nil {
		t.Errorf("muted player should be silent, got %v", err)
	}
	p.Close()
}
