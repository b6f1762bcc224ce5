package fillrush

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestDebugModeLogsFrames(t *testing.T) {
	g := NewGame(quietConfig())
	g.SetDebugMode(true)
	b := g.AddBucket("a", Vec2{1000, 1000})

	out := captureStderr(t, func() {
		g.GenerateMotion()
		b.AddFill(100)
		g.Tick(1.0 / 60)
	})

	if !strings.Contains(out, "[fillrush] frame 1 | spawned: 1") {
		t.Errorf("missing frame stats in %q", out)
	}
	if !strings.Contains(out, "phase -> stopped") {
		t.Errorf("missing phase change in %q", out)
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	g := NewGame(quietConfig())
	g.AddBucket("a", Vec2{}).AddFill(100)

	out := captureStderr(t, func() {
		g.GenerateMotion()
		g.Tick(1.0 / 60)
	})
	if out != "" {
		t.Errorf("unexpected output %q", out)
	}
}
