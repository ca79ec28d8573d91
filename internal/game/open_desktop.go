//go:build !android && !ios

package game

import (
	"errors"
	"fmt"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
)

func (g *Game) openImageDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Eye Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadEye(filename)
}

func (g *Game) loadEye(path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load eye image: %w", err)
	}
	if g.eye != nil {
		g.eye.Deallocate()
	}
	g.eye = img
	g.logger.Printf("eye image %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
