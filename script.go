package fillrush

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action  string `json:"action"`
	Bucket  int    `json:"bucket,omitempty"`
	Emitter int    `json:"emitter,omitempty"`
	Count   int    `json:"count,omitempty"`
	Frames  int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a scenario script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script plays a sequence of game actions across frames. It is used for
// automated scenario tests and the demo's attract mode. Attach it to a Game
// via SetScript; one step runs at the start of each Tick.
//
// Supported actions:
//
//	spawn   generate Count emitters (default 1)
//	fill    Fill bucket index Bucket
//	arrive  report emitter index Emitter (in Emitters order) reaching Bucket
//	start   StartGame
//	pause   PauseGame
//	resume  ResumeGame
//	wait    do nothing for Frames frames
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scenario script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "spawn", "fill", "arrive", "start", "pause", "resume", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the game. Nil detaches the current one.
func (g *Game) SetScript(s *Script) {
	g.script = s
}

// Done reports whether all steps in the script have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Game.Tick.
func (s *Script) step(g *Game) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "spawn":
		n := max(st.Count, 1)
		for range n {
			g.GenerateMotion()
		}
	case "fill":
		if b := bucketAt(g, st.Bucket); b != nil {
			b.Fill()
		}
	case "arrive":
		b := bucketAt(g, st.Bucket)
		if b != nil && st.Emitter >= 0 && st.Emitter < len(g.emitters) {
			g.ReportArrival(g.emitters[st.Emitter], b)
		}
	case "start":
		g.StartGame()
	case "pause":
		g.PauseGame()
	case "resume":
		g.ResumeGame()
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}

func bucketAt(g *Game, i int) *Bucket {
	if i < 0 || i >= len(g.buckets) {
		return nil
	}
	return g.buckets[i]
}
