// Package game is the ebiten screen that renders the wandering eye.
package game

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/eyeball/internal/anim"
	"github.com/iburimskiy/eyeball/internal/config"
	"github.com/iburimskiy/eyeball/internal/gaze"
	"github.com/iburimskiy/eyeball/internal/screen"
	"github.com/iburimskiy/eyeball/internal/sound"
)

type Game struct {
	cfg    config.Config
	logger *log.Logger
	now    func() time.Time
	start  time.Time

	// gaze
	bounds  screen.Bounds
	insets  screen.Insets
	cell    *gaze.Cell
	sched   gaze.Scheduler
	loop    *gaze.Loop
	unbind  gaze.Unsubscribe
	pending *gaze.Move

	// render
	anim  anim.Animator
	eye   *ebiten.Image
	trail *trail

	// audio
	cue *sound.Player

	// state
	debug   bool
	lastErr error
}

// New builds the screen. The gaze loop starts on the first Layout call,
// once the window size is known. cue may be nil.
func New(cfg config.Config, logger *log.Logger, cue *sound.Player) *Game {
	return &Game{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		insets: screen.InsetsFrom(cfg.Insets),
		trail:  newTrail(config.TrailSize),
		cue:    cue,
		debug:  cfg.Debug,
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.loop == nil && outsideWidth > 0 && outsideHeight > 0 {
		g.begin(screen.LayoutMetrics{
			OutsideWidth:  outsideWidth,
			OutsideHeight: outsideHeight,
			Insets:        g.insets,
		})
	}
	return outsideWidth, outsideHeight
}

// begin reads the screen bounds once and starts the loop.
func (g *Game) begin(m screen.Metrics) {
	g.bounds = screen.Dims(m)
	rng := gaze.RangeFor(g.bounds)
	g.logger.Printf("screen %dx%d, wander range +-%d x +-%d", g.bounds.Width, g.bounds.Height, rng.BoundX, rng.BoundY)

	g.start = g.now()
	g.cell = gaze.NewCell(gaze.Move{})
	g.unbind = g.cell.Subscribe(func(m gaze.Move) {
		g.pending = &m
	})
	g.loop = gaze.NewLoop(gaze.NewPicker(rng, g.cfg.Timing, g.cfg.Seed), g.cell, &g.sched, g.logger)
	g.loop.Start()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.cue != nil {
		g.cue.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openImageDialog(); err != nil {
			g.lastErr = err
		}
	}

	g.step(g.now())
	return nil
}

// step runs one frame of the gaze machinery: due callback, newly published
// move, animation progress and completion.
func (g *Game) step(now time.Time) {
	if g.loop == nil {
		return
	}

	g.loop.Tick(now)

	if m := g.pending; m != nil {
		g.pending = nil
		g.anim.Retarget(poseOf(m.Target), m.Duration, now)
		if _, version := g.cell.Get(); version > 1 {
			g.trail.push(m.Target)
			if err := g.cue.Cue(); err != nil {
				g.lastErr = err
			}
		}
	}

	if g.anim.Advance(now) {
		if err := g.loop.TransitionDone(now); err != nil {
			g.lastErr = err
		}
	}
}

func (g *Game) Draw(scr *ebiten.Image) {
	scr.Fill(color.White)
	if g.loop == nil {
		return
	}

	if g.eye == nil {
		g.eye = newEyeSprite(config.SpriteSize, g.cfg.IrisHue)
	}
	g.drawEye(scr)

	if g.debug {
		g.drawTrail(scr)
		g.drawOverlay(scr)
	}
}

// centre of the usable area, inside the system-bar insets
func (g *Game) centre() (float64, float64) {
	return float64(g.insets.Left) + float64(g.bounds.Width)/2,
		float64(g.insets.Top) + float64(g.bounds.Height)/2
}

func (g *Game) drawEye(scr *ebiten.Image) {
	sw := float64(g.eye.Bounds().Dx())
	sh := float64(g.eye.Bounds().Dy())
	fit := math.Min(float64(g.bounds.Width), float64(g.bounds.Height)) * config.EyeScale
	scale := fit / math.Max(sw, sh)

	pose := g.anim.Pose()
	cx, cy := g.centre()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sw/2, -sh/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(pose.Angle * math.Pi / 180)
	op.GeoM.Translate(cx+pose.X, cy+pose.Y)
	op.Filter = ebiten.FilterLinear
	scr.DrawImage(g.eye, op)
}

func (g *Game) drawTrail(scr *ebiten.Image) {
	cx, cy := g.centre()
	points := g.trail.snapshot(config.TrailSize)
	for i, t := range points {
		alpha := uint8(40 + 180*(i+1)/len(points))
		vector.DrawFilledCircle(scr, float32(cx+float64(t.X)), float32(cy+float64(t.Y)), 5, color.RGBA{R: 220, G: 40, B: 60, A: alpha}, true)
	}
}

func (g *Game) drawOverlay(scr *ebiten.Image) {
	now := g.now()
	st := g.loop.Stats()

	next := "-"
	if d, ok := g.loop.NextIn(now); ok {
		next = formatCountdown(d)
	}
	cue := "off"
	if g.cue != nil && !g.cue.Muted() {
		cue = "on"
	}

	lines := []string{
		fmt.Sprintf("phase: %v  next in: %s", g.loop.Phase(), next),
		fmt.Sprintf("target: %v  pose: (%.0f, %.0f, %.0f)", st.LastTarget, g.anim.Pose().X, g.anim.Pose().Y, g.anim.Pose().Angle),
		fmt.Sprintf("cycles: %d  delay min/max: %v / %v", st.Cycles, st.MinDelay, st.MaxDelay),
		fmt.Sprintf("screen: %dx%d  up: %s  sound: %s", g.bounds.Width, g.bounds.Height, formatDuration(now.Sub(g.start)), cue),
		"D/tap: overlay  O: open image  F: fullscreen  M: mute  Esc/Q: quit",
	}
	if g.lastErr != nil {
		lines = append(lines, "Error: "+g.lastErr.Error())
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(scr, l, 12, 12+16*i)
	}
}

// Close stops the loop and releases the speaker.
func (g *Game) Close() {
	if g.loop != nil {
		g.loop.Stop()
	}
	if g.unbind != nil {
		g.unbind()
	}
	g.cue.Close()
}
