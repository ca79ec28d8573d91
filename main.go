package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/eyeball/internal/config"
	"github.com/iburimskiy/eyeball/internal/game"
	"github.com/iburimskiy/eyeball/internal/sound"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "eyeball: %v\n", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	var out io.Writer = io.Discard
	if cfg.Verbose {
		out = os.Stderr
	}
	logger := log.New(out, "[gaze] ", log.Ltime|log.Lmicroseconds)

	var cue *sound.Player
	if cfg.Sound {
		p, err := sound.NewPlayer(cfg.Volume, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sound disabled: %v\n", err)
		} else {
			cue = p
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - D: overlay, O: open image, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	g := game.New(cfg, logger, cue)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
