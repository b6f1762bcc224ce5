package fillrush

// EventType identifies a kind of game event.
type EventType uint8

const (
	EventSpawn      EventType = iota // an emitter was created
	EventExpire                      // an emitter reached the end of its lifetime
	EventArrival                     // an emitter reached a bucket
	EventFill                        // a bucket's progress increased
	EventDecayStart                  // a bucket began draining
	EventWin                         // every bucket is full
	EventPhase                       // the session phase changed
)

// String returns a readable event name.
func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventExpire:
		return "expire"
	case EventArrival:
		return "arrival"
	case EventFill:
		return "fill"
	case EventDecayStart:
		return "decay-start"
	case EventWin:
		return "win"
	case EventPhase:
		return "phase"
	default:
		return "unknown"
	}
}

// GameEvent carries event data to an EventSink.
type GameEvent struct {
	Type EventType
	// EmitterID is set for spawn, expire and arrival events.
	EmitterID uint32
	// Bucket is the bucket index for arrival, fill, decay and win events
	// (-1 when not applicable).
	Bucket   int
	Progress int
	Position Vec2
	Phase    Phase
}
