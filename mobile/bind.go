//go:build android || ios

package mobile

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	mobile.SetGame(newGame(io.Discard))
}

// Dummy is required so the binding generator exports this package.
func Dummy() {}
