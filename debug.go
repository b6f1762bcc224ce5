package fillrush

import (
	"fmt"
	"os"
)

// frameStats holds per-frame simulation counters.
// Only reported when the game is in debug mode.
type frameStats struct {
	spawned  int
	expired  int
	arrivals int
}

// SetDebugMode enables or disables debug mode. When enabled, phase changes
// and per-frame spawn/expire/arrival counts are printed to stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// debugf prints a prefixed line to stderr in debug mode.
func (g *Game) debugf(format string, args ...any) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[fillrush] "+format+"\n", args...)
}

// debugFrame prints the frame's counters if anything happened.
func (g *Game) debugFrame() {
	if !g.debug {
		return
	}
	st := g.stats
	if st.spawned == 0 && st.expired == 0 && st.arrivals == 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[fillrush] frame %d | spawned: %d | expired: %d | arrivals: %d | live: %d | tasks: %d\n",
		g.frame, st.spawned, st.expired, st.arrivals, len(g.emitters), g.sched.Pending())
}
