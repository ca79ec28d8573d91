// Package sound plays a short swish whenever the eye starts to move.
package sound

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/eyeball/internal/config"
)

var ErrNotReady = errors.New("speaker not initialized")

// Sweep is a sine glide from StartHz to EndHz with a linear attack and
// release envelope.
type Sweep struct {
	SampleRate beep.SampleRate
	Length     time.Duration
	StartHz    float64
	EndHz      float64
	Attack     float64 // fraction of Length
	Release    float64 // fraction of Length
}

func DefaultSweep() Sweep {
	return Sweep{
		SampleRate: beep.SampleRate(config.SampleRate),
		Length:     config.CueLength,
		StartHz:    config.CueFreqStart,
		EndHz:      config.CueFreqEnd,
		Attack:     0.15,
		Release:    0.6,
	}
}

// Streamer renders the sweep lazily, stereo, and ends after Length.
func (s Sweep) Streamer() beep.Streamer {
	total := s.SampleRate.N(s.Length)
	attack := int(s.Attack * float64(total))
	release := int(s.Release * float64(total))
	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			t := float64(pos) / float64(total)
			freq := s.StartHz + (s.EndHz-s.StartHz)*t

			vol := 1.0
			if pos < attack && attack > 0 {
				vol = float64(pos) / float64(attack)
			} else if pos >= releaseStart && release > 0 {
				vol = float64(total-pos) / float64(release)
			}

			v := math.Sin(2*math.Pi*phase) * vol
			samples[n][0] = v
			samples[n][1] = v

			phase += freq / float64(s.SampleRate)
			if phase >= 1 {
				phase -= 1
			}
			pos++
			n++
		}
		return n, true
	})
}

// Player owns the speaker. A zero Player is silent.
type Player struct {
	sweep  Sweep
	volume float64
	muted  bool
	ready  bool
	logger *log.Logger
}

// NewPlayer initializes the speaker. On failure the error is returned along
// with a silent player so the caller can keep running.
func NewPlayer(volume float64, logger *log.Logger) (*Player, error) {
	p := &Player{sweep: DefaultSweep(), volume: volume, logger: logger}
	sr := p.sweep.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return p, nil
}

// Cue plays one sweep. Muted or uninitialized players do nothing.
func (p *Player) Cue() error {
	if p == nil || p.muted {
		return nil
	}
	if !p.ready {
		return ErrNotReady
	}
	speaker.Play(p.voice())
	return nil
}

func (p *Player) voice() beep.Streamer {
	return &effects.Volume{
		Streamer: p.sweep.Streamer(),
		Base:     2,
		Volume:   p.volume,
		Silent:   false,
	}
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.muted = !p.muted
	if p.muted && p.ready {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	if p.logger != nil {
		p.logger.Printf("sound muted=%v", p.muted)
	}
	return p.muted
}

func (p *Player) Muted() bool { return p == nil || p.muted }

func (p *Player) Close() {
	if p == nil || !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}
