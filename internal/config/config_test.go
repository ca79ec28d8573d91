package config

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timing != DefaultTiming() {
		t.Errorf("expected default timing, got %+v", cfg.Timing)
	}
	if cfg.Sound || cfg.Fullscreen || cfg.Debug {
		t.Errorf("expected toggles off by default, got %+v", cfg)
	}
	if cfg.Insets != [4]int{} {
		t.Errorf("expected zero insets, got %v", cfg.Insets)
	}
	if cfg.IrisHue != IrisHue {
		t.Errorf("expected hue %v, got %v", IrisHue, cfg.IrisHue)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"-sound", "-seed", "42", "-insets", "0, 24,0,48",
		"-min-delay", "10ms", "-max-delay", "2s",
	}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Sound {
		t.Error("expected sound enabled")
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Insets != [4]int{0, 24, 0, 48} {
		t.Errorf("expected insets [0 24 0 48], got %v", cfg.Insets)
	}
	if cfg.Timing.MinDelay != 10*time.Millisecond || cfg.Timing.MaxDelay != 2*time.Second {
		t.Errorf("unexpected delay range %v..%v", cfg.Timing.MinDelay, cfg.Timing.MaxDelay)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"short insets", []string{"-insets", "1,2,3"}, ErrInvalidInsets},
		{"negative inset", []string{"-insets", "1,-2,3,4"}, ErrInvalidInsets},
		{"garbage inset", []string{"-insets", "a,b,c,d"}, ErrInvalidInsets},
		{"inverted delay", []string{"-min-delay", "3s", "-max-delay", "1s"}, ErrInvalidRange},
		{"sub-millisecond delay", []string{"-min-delay", "500us", "-max-delay", "900us"}, ErrInvalidRange},
		{"fractional duration", []string{"-max-duration", "20.5ms"}, ErrInvalidRange},
		{"inverted duration", []string{"-min-duration", "1s", "-max-duration", "10ms"}, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadUnknownFlag(t *testing.T) {
	if _, err := Load([]string{"-nope"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}
