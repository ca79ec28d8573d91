// Package mobile is the ebitenmobile entry point:
//
//	ebitenmobile bind -target android -javapkg com.iburimskiy.eyeball ./mobile
package mobile

import (
	"io"
	"log"

	"github.com/iburimskiy/eyeball/internal/config"
	"github.com/iburimskiy/eyeball/internal/game"
)

// newGame builds the screen with stock settings and no move cue.
func newGame(logOut io.Writer) *game.Game {
	return game.New(config.Default(), log.New(logOut, "[gaze] ", log.Ltime|log.Lmicroseconds), nil)
}
