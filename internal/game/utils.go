package game

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/eyeball/internal/anim"
	"github.com/iburimskiy/eyeball/internal/gaze"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// formatCountdown shows sub-second precision, pre-delays are short.
func formatCountdown(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func poseOf(t gaze.Target) anim.Pose {
	return anim.Pose{X: float64(t.X), Y: float64(t.Y), Angle: float64(t.Angle)}
}
