package fillrush

import (
	"math"
	"math/rand/v2"
)

// Vec2 is a 2D vector used for positions, headings and steering offsets
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max).
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Phase is the session state of a Game.
type Phase uint8

const (
	PhaseStopped Phase = iota // simulation finished (won) or not running
	PhaseRunning              // buckets accept fill and the win check is armed
)

// String returns a readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// VolumeCurve selects how a bucket's progress maps to audio gain.
type VolumeCurve uint8

const (
	VolumeLinear       VolumeCurve = iota // gain = progress/100
	VolumeClampedToOne                    // gain = min(1, progress/VolumeKnee)
)

// ClipGameEnd is the presentation clip played once when every bucket is full.
const ClipGameEnd = "game-end"

// MaxProgress is the fill level at which a bucket counts as full.
const MaxProgress = 100

// clampProgress clamps v to [0, MaxProgress].
func clampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxProgress {
		return MaxProgress
	}
	return v
}
