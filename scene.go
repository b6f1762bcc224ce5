package fillrush

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultTPS is used when ebiten reports no fixed tick rate.
const defaultTPS = 60

// Scene adapts a Game to ebiten.Game. Update ticks the game by one frame of
// 1/TPS seconds; Draw delegates to DrawFunc, since the core does no
// rendering of its own.
type Scene struct {
	game          *Game
	width, height int

	// DrawFunc renders the game. Nil draws nothing.
	DrawFunc func(screen *ebiten.Image, g *Game)
	// OnUpdate runs after each Tick, typically to poll input. A non-nil
	// error (e.g. ebiten.Termination) ends the run loop.
	OnUpdate func(g *Game) error
}

// NewScene wraps g with a fixed logical screen size.
func NewScene(g *Game, width, height int) *Scene {
	return &Scene{game: g, width: width, height: height}
}

// Game returns the wrapped game.
func (s *Scene) Game() *Game {
	return s.game
}

// Update implements ebiten.Game.
func (s *Scene) Update() error {
	s.game.Tick(frameDelta())
	if s.OnUpdate != nil {
		return s.OnUpdate(s.game)
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.DrawFunc != nil {
		s.DrawFunc(screen, s.game)
	}
}

// Layout implements ebiten.Game.
func (s *Scene) Layout(_, _ int) (int, int) {
	return s.width, s.height
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS overrides ebiten's tick rate when positive.
	TPS int
}

// Run opens a window and runs the scene until the window closes or OnUpdate
// returns an error. ebiten.Termination is reported as a clean exit.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	defer s.game.Close()
	if err := ebiten.RunGame(s); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// frameDelta returns the fixed simulation step for the current tick rate.
func frameDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	return 1.0 / float64(tps)
}
