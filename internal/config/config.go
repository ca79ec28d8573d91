package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	WindowWidth  = 540
	WindowHeight = 960
	WindowTitle  = "Eyeball"

	// Fraction of the half-screen the eye may wander into
	BoundFraction = 0.9
	MaxAngle      = 60

	// Transition and pre-delay limits
	MinDuration = 20 * time.Millisecond
	MaxDuration = 500 * time.Millisecond
	MinDelay    = 1 * time.Millisecond
	MaxDelay    = 5000 * time.Millisecond

	// Visual parameters
	EyeScale   = 0.45
	IrisHue    = 200.0
	TrailSize  = 16
	SpriteSize = 512

	// Move cue
	SampleRate   = 44100
	CueVolume    = -1.5
	CueLength    = 120 * time.Millisecond
	CueFreqStart = 520.0
	CueFreqEnd   = 260.0
)

var (
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidInsets = errors.New("invalid insets")
)

// Timing holds the inclusive ranges the gaze loop draws from.
type Timing struct {
	MinDuration time.Duration
	MaxDuration time.Duration
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// DefaultTiming returns the stock transition and pre-delay ranges.
func DefaultTiming() Timing {
	return Timing{
		MinDuration: MinDuration,
		MaxDuration: MaxDuration,
		MinDelay:    MinDelay,
		MaxDelay:    MaxDelay,
	}
}

// Validate reports inverted or negative ranges, and bounds finer than a
// millisecond, which the picker cannot draw.
func (t Timing) Validate() error {
	for _, d := range []time.Duration{t.MinDuration, t.MaxDuration, t.MinDelay, t.MaxDelay} {
		if d%time.Millisecond != 0 {
			return fmt.Errorf("%v is not whole milliseconds: %w", d, ErrInvalidRange)
		}
	}
	if t.MinDuration < 0 || t.MaxDuration < t.MinDuration {
		return fmt.Errorf("duration %v..%v: %w", t.MinDuration, t.MaxDuration, ErrInvalidRange)
	}
	if t.MinDelay < 0 || t.MaxDelay < t.MinDelay {
		return fmt.Errorf("delay %v..%v: %w", t.MinDelay, t.MaxDelay, ErrInvalidRange)
	}
	return nil
}

type Config struct {
	Fullscreen bool
	Sound      bool
	Volume     float64
	Debug      bool
	Verbose    bool
	Seed       uint64
	IrisHue    float64

	// Safe-area insets in pixels: left, top, right, bottom
	Insets [4]int

	Timing Timing
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Volume:  CueVolume,
		IrisHue: IrisHue,
		Timing:  DefaultTiming(),
	}
}

// Load parses command-line arguments (without the program name) on top of Default.
func Load(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("eyeball", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start in fullscreen (hides system bars)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play a short cue when the eye moves")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "cue volume, base-2 exponent (0 = unchanged)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show the debug overlay")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every gaze cycle to stderr")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fs.Float64Var(&cfg.IrisHue, "hue", cfg.IrisHue, "iris hue in degrees")
	fs.DurationVar(&cfg.Timing.MinDuration, "min-duration", cfg.Timing.MinDuration, "shortest transition")
	fs.DurationVar(&cfg.Timing.MaxDuration, "max-duration", cfg.Timing.MaxDuration, "longest transition")
	fs.DurationVar(&cfg.Timing.MinDelay, "min-delay", cfg.Timing.MinDelay, "shortest pause between moves")
	fs.DurationVar(&cfg.Timing.MaxDelay, "max-delay", cfg.Timing.MaxDelay, "longest pause between moves")
	insets := fs.String("insets", "0,0,0,0", "safe-area insets: left,top,right,bottom")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	cfg.Insets, err = parseInsets(*insets)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Timing.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseInsets(s string) ([4]int, error) {
	var out [4]int
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return out, fmt.Errorf("%q: want 4 values: %w", s, ErrInvalidInsets)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return out, fmt.Errorf("%q: %w", s, ErrInvalidInsets)
		}
		out[i] = v
	}
	return out, nil
}
