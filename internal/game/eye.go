package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// newEyeSprite draws the default eyeball into a size x size image.
func newEyeSprite(size int, hue float64) *ebiten.Image {
	img := ebiten.NewImage(size, size)

	c := float32(size) / 2
	r := c * 0.96

	// Sclera with a soft rim so it reads on a white background
	vector.DrawFilledCircle(img, c, c, r, color.RGBA{R: 250, G: 248, B: 244, A: 255}, true)
	vector.StrokeCircle(img, c, c, r, r*0.03, color.RGBA{R: 150, G: 140, B: 140, A: 255}, true)

	// Veins
	vein := color.RGBA{R: 210, G: 80, B: 80, A: 120}
	for i, a := range [][4]float32{
		{0.95, 0.50, 0.70, 0.46},
		{0.90, 0.70, 0.72, 0.60},
		{0.08, 0.45, 0.30, 0.52},
		{0.12, 0.30, 0.32, 0.40},
	} {
		w := r * (0.012 + 0.004*float32(i%2))
		vector.StrokeLine(img, a[0]*float32(size), a[1]*float32(size), a[2]*float32(size), a[3]*float32(size), w, vein, true)
	}

	// Iris, darker outer ring, pupil
	ir, ig, ib := hsvToRgb(hue, 0.65, 0.75)
	rr, rg, rb := hsvToRgb(hue, 0.8, 0.35)
	irisR := r * 0.42
	vector.DrawFilledCircle(img, c, c, irisR, color.RGBA{R: ir, G: ig, B: ib, A: 255}, true)
	vector.StrokeCircle(img, c, c, irisR, irisR*0.12, color.RGBA{R: rr, G: rg, B: rb, A: 255}, true)
	vector.DrawFilledCircle(img, c, c, irisR*0.45, color.RGBA{R: 10, G: 10, B: 14, A: 255}, true)

	// Highlight
	vector.DrawFilledCircle(img, c+irisR*0.3, c-irisR*0.35, irisR*0.16, color.RGBA{R: 255, G: 255, B: 255, A: 220}, true)

	return img
}
