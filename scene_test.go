package fillrush

import (
	"errors"
	"testing"
)

func TestSceneLayout(t *testing.T) {
	s := NewScene(NewGame(quietConfig()), 320, 240)
	w, h := s.Layout(1920, 1080)
	if w != 320 || h != 240 {
		t.Errorf("Layout = %dx%d, want 320x240", w, h)
	}
}

func TestSceneUpdateTicksGame(t *testing.T) {
	g := NewGame(quietConfig())
	s := NewScene(g, 320, 240)
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if g.Frame() != 1 {
		t.Errorf("Frame = %d, want 1", g.Frame())
	}
	if s.Game() != g {
		t.Error("Game() should return the wrapped game")
	}
}

func TestSceneOnUpdateError(t *testing.T) {
	stop := errors.New("stop")
	s := NewScene(NewGame(quietConfig()), 320, 240)
	s.OnUpdate = func(*Game) error { return stop }
	if err := s.Update(); !errors.Is(err, stop) {
		t.Errorf("Update error = %v, want stop", err)
	}
}

func TestFrameDeltaPositive(t *testing.T) {
	if dt := frameDelta(); dt <= 0 || dt > 1 {
		t.Errorf("frameDelta = %f", dt)
	}
}
