package fillrush

import (
	"math"
	"testing"
	"time"
)

func newTestEmitter(pos, heading Vec2, speed float64) *Emitter {
	return &Emitter{
		Position:        pos,
		Heading:         heading,
		Speed:           speed,
		TurningStrength: 1,
		WaypointRadius:  1,
		ttl:             3 * time.Second,
	}
}

func approxVec(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestNewEmitterSpawnJitter(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.Origin = Vec2{0, 0}
	cfg.Jitter = 20
	for i := 0; i < 200; i++ {
		e := NewEmitter(uint32(i), cfg)
		p := e.Position
		if p.X < 0 || p.X >= 20 || p.Y < 0 || p.Y >= 20 {
			t.Fatalf("spawn %d at %+v, outside [0,20)x[0,20)", i, p)
		}
	}
}

func TestNewEmitterSpawnOffsetFromOrigin(t *testing.T) {
	cfg := DefaultMotionConfig()
	cfg.Origin = Vec2{100, -50}
	cfg.Jitter = 0
	cfg.HeadingJitter = 0
	e := NewEmitter(1, cfg)
	if e.Position != cfg.Origin {
		t.Errorf("Position = %+v, want %+v", e.Position, cfg.Origin)
	}
	if !approxVec(e.Heading, Vec2{0, 1}) {
		t.Errorf("Heading = %+v, want {0 1}", e.Heading)
	}
	if e.TTL() != 3*time.Second {
		t.Errorf("TTL = %v, want 3s", e.TTL())
	}
}

func TestNewEmitterHeadingJitter(t *testing.T) {
	cfg := DefaultMotionConfig()
	for i := 0; i < 100; i++ {
		e := NewEmitter(uint32(i), cfg)
		if math.Abs(e.Heading.Len()-1) > 1e-9 {
			t.Fatalf("heading %+v is not unit length", e.Heading)
		}
		// Direction (0,2) plus at most 0.2 per component stays within
		// about 6 degrees of straight up.
		if e.Heading.X < 0 || e.Heading.X > 0.11 {
			t.Fatalf("heading %+v outside jitter bounds", e.Heading)
		}
	}
}

func TestStepKeepsHeadingWithoutInputs(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{1, 0}, 10)
	pos, expired := e.Step(0.5, nil, nil)
	if expired {
		t.Fatal("should not expire")
	}
	if !approxVec(pos, Vec2{5, 0}) {
		t.Errorf("pos = %+v, want {5 0}", pos)
	}
}

func TestStepSeeksTargetOnly(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{1, 0}, 10)
	pos, _ := e.Step(0.5, nil, []Vec2{{0, 100}})
	if !approxVec(pos, Vec2{0, 5}) {
		t.Errorf("pos = %+v, want {0 5}", pos)
	}
	if !approxVec(e.Heading, Vec2{0, 1}) {
		t.Errorf("Heading = %+v, want {0 1}", e.Heading)
	}
}

func TestStepFollowsWaypointsInOrder(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{0, 1}, 10)
	path := []Vec2{{10, 0}, {10, 10}}

	e.Step(0.5, path, nil)
	if !approxVec(e.Position, Vec2{5, 0}) {
		t.Fatalf("pos = %+v, want {5 0}", e.Position)
	}
	e.Step(0.5, path, nil)
	if !approxVec(e.Position, Vec2{10, 0}) {
		t.Fatalf("pos = %+v, want {10 0}", e.Position)
	}

	// First waypoint reached: the next step heads for the second.
	e.Step(0.5, path, nil)
	if e.Waypoint() != 1 {
		t.Errorf("Waypoint = %d, want 1", e.Waypoint())
	}
	if !approxVec(e.Position, Vec2{10, 5}) {
		t.Errorf("pos = %+v, want {10 5}", e.Position)
	}
}

func TestStepBlendsWaypointAndTarget(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{0, -1}, 10)
	e.Step(0.1, []Vec2{{10, 0}}, []Vec2{{0, 10}})
	want := Vec2{1, 1}.Normalize()
	if !approxVec(e.Heading, want) {
		t.Errorf("Heading = %+v, want %+v", e.Heading, want)
	}
}

func TestStepTurningStrengthWeightsTarget(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{0, -1}, 10)
	e.TurningStrength = 0
	e.Step(0.1, []Vec2{{10, 0}}, []Vec2{{0, 10}})
	if !approxVec(e.Heading, Vec2{1, 0}) {
		t.Errorf("Heading = %+v, want {1 0} with zero turning strength", e.Heading)
	}
}

func TestStepAfterLastWaypointSeeksTarget(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{1, 0}, 10)
	e.Step(0.1, []Vec2{{0, 0}}, []Vec2{{0, -10}})
	if e.Waypoint() != 1 {
		t.Errorf("Waypoint = %d, want 1", e.Waypoint())
	}
	if !approxVec(e.Heading, Vec2{0, -1}) {
		t.Errorf("Heading = %+v, want {0 -1}", e.Heading)
	}
}

func TestStepNearestTargetTieGoesToFirst(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{0, 1}, 10)
	e.Step(0.1, nil, []Vec2{{10, 0}, {-10, 0}})
	if !approxVec(e.Heading, Vec2{1, 0}) {
		t.Errorf("Heading = %+v, want {1 0}", e.Heading)
	}
}

func TestStepOpposingVectorsKeepHeading(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{0, 1}, 10)
	e.Step(0.1, []Vec2{{10, 0}}, []Vec2{{-10, 0}})
	if !approxVec(e.Heading, Vec2{0, 1}) {
		t.Errorf("Heading = %+v, want {0 1}", e.Heading)
	}
}

func TestStepExpiresAfterTTL(t *testing.T) {
	e := newTestEmitter(Vec2{}, Vec2{1, 0}, 10)
	for i := 0; i < 2; i++ {
		if _, expired := e.Step(1, nil, nil); expired {
			t.Fatalf("expired early at step %d", i)
		}
	}
	if _, expired := e.Step(1, nil, nil); !expired {
		t.Fatal("should expire after 3s")
	}
	if e.Alive() {
		t.Error("expired emitter reports alive")
	}
}
