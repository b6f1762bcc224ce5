package fillrush

// GainSink receives a bucket's audio gain in [0, 1] whenever its progress
// changes. The core never owns playback; see PlayerGain for an ebiten adapter.
type GainSink interface {
	SetGain(gain float64)
}

// ScaleSink receives the vertical scale factor (progress/100) of a bucket's
// content node.
type ScaleSink interface {
	SetScaleY(scale float64)
}

// Overlay is a UI surface whose visibility the game toggles (onboarding
// panel, pause button, pause background).
type Overlay interface {
	SetVisible(visible bool)
}

// WinDisplay is the end-of-game surface. It is made visible and asked to play
// ClipGameEnd exactly once per session.
type WinDisplay interface {
	Overlay
	Play(clip string)
}

// SceneStack is the external scene navigator. NextScene with no index
// advances to the next registered scene; index -1 means quit.
type SceneStack interface {
	NextScene(transition string, index ...int)
	PrevScene(transition string)
}

// SceneQuit is the NextScene index reserved for leaving the game.
const SceneQuit = -1

// EmitterHandle is the live instance an EmitterFactory produced for an
// emitter. The game pushes positions into it and destroys it on removal.
type EmitterHandle interface {
	SetPosition(pos Vec2)
	Destroy()
}

// EmitterFactory instantiates the visual/physical counterpart of a newly
// spawned emitter.
type EmitterFactory interface {
	Spawn(pos, heading Vec2) EmitterHandle
}

// EventSink is the optional bridge that receives game events, e.g. an ECS
// world (see the ecs package).
type EventSink interface {
	EmitEvent(event GameEvent)
}
