// Package screen reports the usable drawing area of the display.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/eyeball/internal/config"
)

// Bounds is the drawable area in pixels. It is read once at startup.
type Bounds struct {
	Width  int
	Height int
}

// Insets are regions covered by system bars.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Metrics is the host display query.
type Metrics interface {
	// WindowBounds returns the current window size; ok is false when the
	// platform cannot report it yet.
	WindowBounds() (width, height int, ok bool)
	SystemBarInsets() Insets
	// DisplayPixels is the legacy query: raw display size, no inset handling.
	DisplayPixels() (width, height int)
}

// Dims returns the usable drawing area.
func Dims(m Metrics) Bounds {
	if w, h, ok := m.WindowBounds(); ok && w > 0 && h > 0 {
		in := m.SystemBarInsets()
		b := Bounds{
			Width:  w - in.Left - in.Right,
			Height: h - in.Top - in.Bottom,
		}
		if b.Width > 0 && b.Height > 0 {
			return b
		}
	}

	if w, h := m.DisplayPixels(); w > 0 && h > 0 {
		return Bounds{Width: w, Height: h}
	}
	return Bounds{Width: config.WindowWidth, Height: config.WindowHeight}
}

// LayoutMetrics answers Metrics from the sizes ebiten hands to Game.Layout.
type LayoutMetrics struct {
	OutsideWidth  int
	OutsideHeight int
	Insets        Insets

	// Legacy display query, the current monitor's size when nil
	Display func() (int, int)
}

func (l LayoutMetrics) WindowBounds() (int, int, bool) {
	return l.OutsideWidth, l.OutsideHeight, l.OutsideWidth > 0 && l.OutsideHeight > 0
}

func (l LayoutMetrics) SystemBarInsets() Insets { return l.Insets }

func (l LayoutMetrics) DisplayPixels() (int, int) {
	if l.Display != nil {
		return l.Display()
	}
	return monitorSize(ebiten.Monitor())
}

// monitorSize reports (0, 0) when no monitor is known yet.
func monitorSize(m *ebiten.MonitorType) (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.Size()
}

// InsetsFrom converts the config's left,top,right,bottom array.
func InsetsFrom(v [4]int) Insets {
	return Insets{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}
}
