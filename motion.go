package fillrush

import (
	"math"
	"time"
)

// MotionConfig controls how emitters are spawned and steered.
type MotionConfig struct {
	// Origin is the base spawn position.
	Origin Vec2
	// Direction is the base launch direction; it need not be normalized.
	Direction Vec2
	// Jitter is the spawn position spread. Each axis gets a random offset in
	// [0, Jitter).
	Jitter float64
	// HeadingJitter is the per-component random offset in [0, HeadingJitter)
	// added to Direction before normalizing.
	HeadingJitter float64
	// Speed is the travel speed in units per second.
	Speed float64
	// TurningStrength weights the target-seeking vector against the
	// waypoint vector. 0 follows waypoints only; larger values home in on
	// buckets harder.
	TurningStrength float64
	// WaypointRadius is how close an emitter must get to a waypoint before
	// moving on to the next one.
	WaypointRadius float64
	// TTL is the emitter lifetime.
	TTL time.Duration
}

// DefaultMotionConfig returns the standard emitter tuning.
func DefaultMotionConfig() MotionConfig {
	return MotionConfig{
		Direction:       Vec2{0, 2},
		Jitter:          20,
		HeadingJitter:   0.2,
		Speed:           30,
		TurningStrength: 1,
		WaypointRadius:  8,
		TTL:             3000 * time.Millisecond,
	}
}

// Emitter is a moving entity that steers along a waypoint path toward the
// nearest bucket. It owns only its own state; the Game owns its lifetime.
type Emitter struct {
	ID       uint32
	Position Vec2
	Heading  Vec2
	Speed    float64
	// TurningStrength is the steering gain; see MotionConfig.TurningStrength.
	TurningStrength float64
	WaypointRadius  float64

	ttl      time.Duration
	waypoint int
	removed  bool
	handle   EmitterHandle
	expiry   *Task
}

// NewEmitter creates an emitter at the configured origin with the spawn
// perturbation applied to its position and heading.
func NewEmitter(id uint32, cfg MotionConfig) *Emitter {
	jitter := Range{0, cfg.Jitter}
	spin := Range{0, cfg.HeadingJitter}
	pos := Vec2{
		X: cfg.Origin.X + jitter.Random(),
		Y: cfg.Origin.Y + jitter.Random(),
	}
	heading := Vec2{
		X: cfg.Direction.X + spin.Random(),
		Y: cfg.Direction.Y + spin.Random(),
	}.Normalize()
	return &Emitter{
		ID:              id,
		Position:        pos,
		Heading:         heading,
		Speed:           cfg.Speed,
		TurningStrength: cfg.TurningStrength,
		WaypointRadius:  cfg.WaypointRadius,
		ttl:             cfg.TTL,
	}
}

// TTL returns the remaining lifetime.
func (e *Emitter) TTL() time.Duration { return e.ttl }

// Waypoint returns the index of the waypoint the emitter is heading to.
func (e *Emitter) Waypoint() int { return e.waypoint }

// Alive reports whether the emitter is still part of the session.
func (e *Emitter) Alive() bool { return !e.removed && e.ttl > 0 }

// Step advances the emitter by dt seconds and returns its new position and
// whether its lifetime has run out.
//
// The heading is the normalized sum of the direction to the current waypoint
// and the direction to the nearest target scaled by TurningStrength. With no
// waypoints left the emitter seeks targets only, with no targets it follows
// the path only, and with neither it keeps its previous heading.
func (e *Emitter) Step(dt float64, waypoints, targets []Vec2) (Vec2, bool) {
	if e.removed {
		return e.Position, true
	}

	toPath := e.waypointVector(waypoints)
	toTarget := e.targetVector(targets)

	desired := toPath.Add(toTarget.Scale(e.TurningStrength)).Normalize()
	if !desired.IsZero() {
		e.Heading = desired
	}

	e.Position = e.Position.Add(e.Heading.Scale(e.Speed * dt))

	e.ttl -= seconds(dt)
	return e.Position, e.ttl <= 0
}

// waypointVector returns the unit vector toward the current waypoint,
// advancing past waypoints that are already within reach.
func (e *Emitter) waypointVector(waypoints []Vec2) Vec2 {
	for e.waypoint < len(waypoints) {
		if e.Position.Dist(waypoints[e.waypoint]) > e.WaypointRadius {
			return waypoints[e.waypoint].Sub(e.Position).Normalize()
		}
		e.waypoint++
	}
	return Vec2{}
}

// targetVector returns the unit vector toward the nearest target. Ties go to
// the lowest index.
func (e *Emitter) targetVector(targets []Vec2) Vec2 {
	best := -1
	bestDist := math.Inf(1)
	for i, t := range targets {
		if d := e.Position.Dist(t); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Vec2{}
	}
	return targets[best].Sub(e.Position).Normalize()
}
