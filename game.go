package fillrush

import "time"

// GameConfig holds the session tuning.
type GameConfig struct {
	// Motion configures spawned emitters.
	Motion MotionConfig
	// Bucket is the config used by AddBucket.
	Bucket BucketConfig
	// SpawnInterval is the automatic spawn cadence. Zero disables automatic
	// spawning; GenerateMotion can still be called directly.
	SpawnInterval time.Duration
	// PauseHaltsSimulation stops Tick from advancing anything while paused.
	// When false, pausing only toggles the pause overlays and the simulation
	// keeps running underneath them.
	PauseHaltsSimulation bool
	// RemoveOnArrival removes an emitter once it fills a bucket.
	RemoveOnArrival bool
	// EmitterRadius is the collision radius of an emitter for the default
	// arrival detector.
	EmitterRadius float64
}

// DefaultGameConfig returns the standard session tuning.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Motion:          DefaultMotionConfig(),
		Bucket:          DefaultBucketConfig(),
		SpawnInterval:   250 * time.Millisecond,
		RemoveOnArrival: true,
		EmitterRadius:   4,
	}
}

// Game owns one play session: the buckets, the live emitters, the task
// scheduler and the phase machine. Call Tick once per frame.
//
// Every collaborator (overlays, win display, scene stack, emitter factory,
// event sink) is optional. A missing collaborator turns the operation that
// needs it into a no-op.
type Game struct {
	config GameConfig
	sched  *Scheduler

	phase  Phase
	paused bool
	won    bool
	closed bool
	debug  bool
	frame  uint64

	buckets   []*Bucket
	emitters  []*Emitter
	waypoints []Vec2
	targetBuf []Vec2

	detector ArrivalDetector
	arrivals []Arrival

	nextEmitterID uint32
	spawnTask     *Task

	factory     EmitterFactory
	events      EventSink
	scenes      SceneStack
	onboarding  Overlay
	pauseButton Overlay
	pauseBG     Overlay
	winDisplay  WinDisplay

	script *Script
	stats  frameStats
}

// NewGame creates a session in PhaseRunning. If cfg.SpawnInterval is
// positive, emitters start spawning on that cadence.
func NewGame(cfg GameConfig) *Game {
	g := &Game{
		config:   cfg,
		sched:    NewScheduler(),
		phase:    PhaseRunning,
		detector: NewRadiusDetector(cfg.EmitterRadius),
	}
	g.armSpawner()
	return g
}

// Alive reports whether the session has not been closed.
func (g *Game) Alive() bool { return !g.closed }

// Config returns the session config.
func (g *Game) Config() GameConfig { return g.config }

// Scheduler returns the session's task scheduler.
func (g *Game) Scheduler() *Scheduler { return g.sched }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Paused reports whether the pause overlay is up.
func (g *Game) Paused() bool { return g.paused }

// Won reports whether the session ended with every bucket full.
func (g *Game) Won() bool { return g.won }

// Frame returns the number of simulated frames.
func (g *Game) Frame() uint64 { return g.frame }

// Buckets returns the session's buckets. The returned slice MUST NOT be
// mutated.
func (g *Game) Buckets() []*Bucket { return g.buckets }

// Emitters returns the live emitters. The returned slice MUST NOT be mutated.
func (g *Game) Emitters() []*Emitter { return g.emitters }

// Waypoints returns the steering path.
func (g *Game) Waypoints() []Vec2 { return g.waypoints }

// AddBucket creates a bucket using the session's bucket config.
func (g *Game) AddBucket(name string, pos Vec2) *Bucket {
	return g.AddBucketWithConfig(name, pos, g.config.Bucket)
}

// AddBucketWithConfig creates a bucket with its own config.
func (g *Game) AddBucketWithConfig(name string, pos Vec2, cfg BucketConfig) *Bucket {
	b := NewBucket(name, pos, g.sched, cfg)
	b.index = len(g.buckets)
	b.events = g.events
	g.buckets = append(g.buckets, b)
	return b
}

// SetWaypoints replaces the steering path. The slice is copied.
func (g *Game) SetWaypoints(points []Vec2) {
	g.waypoints = append(g.waypoints[:0], points...)
}

// SetArrivalDetector replaces the default RadiusDetector. Nil disables
// built-in detection; arrivals then come only from ReportArrival.
func (g *Game) SetArrivalDetector(d ArrivalDetector) {
	g.detector = d
}

// SetEmitterFactory sets the factory that instantiates spawned emitters.
func (g *Game) SetEmitterFactory(f EmitterFactory) {
	g.factory = f
}

// SetEventSink sets the event bridge for the game and all of its buckets.
func (g *Game) SetEventSink(sink EventSink) {
	g.events = sink
	for _, b := range g.buckets {
		b.events = sink
	}
}

// SetSceneStack sets the navigator used by QuitGame and RestartGame.
func (g *Game) SetSceneStack(s SceneStack) {
	g.scenes = s
}

// SetOverlays sets the onboarding panel, pause button and pause background.
// The pause button and background start hidden.
func (g *Game) SetOverlays(onboarding, pauseButton, pauseBG Overlay) {
	g.onboarding = onboarding
	g.pauseButton = pauseButton
	g.pauseBG = pauseBG
	setVisible(g.pauseButton, false)
	setVisible(g.pauseBG, false)
}

// SetWinDisplay sets the end-of-game surface.
func (g *Game) SetWinDisplay(w WinDisplay) {
	g.winDisplay = w
}

// Tick advances the session by dt seconds: scheduled tasks, emitter motion,
// arrivals, bucket decay and the win check, in that order. Emitters removed
// during the frame are dropped at the end of it.
func (g *Game) Tick(dt float64) {
	if g.closed {
		return
	}
	if g.script != nil {
		g.script.step(g)
	}
	if g.paused && g.config.PauseHaltsSimulation {
		return
	}
	g.frame++

	g.sched.Advance(dt)

	g.targetBuf = g.targetBuf[:0]
	for _, b := range g.buckets {
		if b.Alive() {
			g.targetBuf = append(g.targetBuf, b.Position)
		}
	}
	for _, e := range g.emitters {
		if !e.Alive() {
			continue
		}
		pos, expired := e.Step(dt, g.waypoints, g.targetBuf)
		if e.handle != nil {
			e.handle.SetPosition(pos)
		}
		if expired {
			g.expire(e)
		}
	}

	if g.detector != nil {
		g.arrivals = g.detector.Detect(g.emitters, g.buckets, g.arrivals)
	}
	for _, a := range g.arrivals {
		g.arrive(a)
	}
	clear(g.arrivals)
	g.arrivals = g.arrivals[:0]

	for _, b := range g.buckets {
		b.Update(dt)
	}

	g.checkWin()
	g.sweep()
	g.debugFrame()
	g.stats = frameStats{}
}

// ReportArrival queues an arrival from an external collision system. It is
// applied during the next Tick. A nil emitter fills the bucket without
// removing anything.
func (g *Game) ReportArrival(e *Emitter, b *Bucket) {
	if b == nil {
		return
	}
	g.arrivals = append(g.arrivals, Arrival{Emitter: e, Bucket: b})
}

// GenerateMotion spawns an emitter at the configured origin with jittered
// position and heading. The emitter is removed no later than its TTL.
func (g *Game) GenerateMotion() *Emitter {
	if g.closed {
		return nil
	}
	g.nextEmitterID++
	e := NewEmitter(g.nextEmitterID, g.config.Motion)
	if g.factory != nil {
		e.handle = g.factory.Spawn(e.Position, e.Heading)
	}
	e.expiry = g.sched.After(e.ttl, e, func() { g.expire(e) })
	g.emitters = append(g.emitters, e)
	g.stats.spawned++
	g.emit(GameEvent{Type: EventSpawn, EmitterID: e.ID, Bucket: -1, Position: e.Position})
	return e
}

// StartGame dismisses the onboarding panel and resumes play.
func (g *Game) StartGame() {
	setVisible(g.onboarding, false)
	g.ResumeGame()
}

// PauseGame shows the pause background and hides the pause button.
func (g *Game) PauseGame() {
	g.paused = true
	setVisible(g.pauseBG, true)
	setVisible(g.pauseButton, false)
	g.debugf("paused (halts simulation: %v)", g.config.PauseHaltsSimulation)
}

// ResumeGame hides the pause background and shows the pause button.
func (g *Game) ResumeGame() {
	g.paused = false
	setVisible(g.pauseBG, false)
	setVisible(g.pauseButton, true)
}

// QuitGame asks the scene stack to leave the game.
func (g *Game) QuitGame() {
	if g.scenes == nil {
		return
	}
	g.scenes.NextScene("", SceneQuit)
}

// RestartGame asks the scene stack to reload the game scene by stepping
// forward and back.
func (g *Game) RestartGame() {
	if g.scenes == nil {
		return
	}
	g.scenes.NextScene("")
	g.scenes.PrevScene("")
}

// Reset starts a new session on the same scene: emitters are destroyed,
// buckets are reset and the phase returns to PhaseRunning.
func (g *Game) Reset() {
	g.clearEmitters()
	g.arrivals = g.arrivals[:0]
	g.sched.Reset()
	for _, b := range g.buckets {
		b.Reset()
	}
	g.won = false
	g.paused = false
	g.setPhase(PhaseRunning)
	g.armSpawner()
}

// Close tears the session down. Scheduled tasks are cancelled, emitter
// handles destroyed and buckets disposed.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.clearEmitters()
	for _, b := range g.buckets {
		b.Dispose()
	}
	g.sched.Reset()
	g.closed = true
}

func (g *Game) armSpawner() {
	g.spawnTask.Cancel()
	g.spawnTask = g.sched.Every(g.config.SpawnInterval, g, func() { g.GenerateMotion() })
}

func (g *Game) arrive(a Arrival) {
	if !a.Bucket.Alive() {
		return
	}
	id := uint32(0)
	if a.Emitter != nil {
		if a.Emitter.removed {
			return
		}
		id = a.Emitter.ID
	}
	g.stats.arrivals++
	g.emit(GameEvent{Type: EventArrival, EmitterID: id, Bucket: a.Bucket.index, Position: a.Bucket.Position})
	a.Bucket.Fill()
	if a.Emitter != nil && g.config.RemoveOnArrival {
		a.Emitter.removed = true
	}
}

func (g *Game) expire(e *Emitter) {
	if e.removed {
		return
	}
	e.removed = true
	g.stats.expired++
	g.emit(GameEvent{Type: EventExpire, EmitterID: e.ID, Bucket: -1, Position: e.Position})
}

// allFull reports whether there is at least one live bucket and every live
// bucket is full.
func (g *Game) allFull() bool {
	n := 0
	for _, b := range g.buckets {
		if !b.Alive() {
			continue
		}
		if !b.Full() {
			return false
		}
		n++
	}
	return n > 0
}

func (g *Game) checkWin() {
	if g.phase != PhaseRunning || !g.allFull() {
		return
	}
	g.won = true
	g.setPhase(PhaseStopped)
	g.spawnTask.Cancel()
	for _, b := range g.buckets {
		b.Lock()
	}
	if g.winDisplay != nil {
		g.winDisplay.SetVisible(true)
		g.winDisplay.Play(ClipGameEnd)
	}
	g.emit(GameEvent{Type: EventWin, Bucket: -1, Phase: g.phase})
	g.debugf("all %d buckets full at frame %d", len(g.buckets), g.frame)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.phase = p
	g.emit(GameEvent{Type: EventPhase, Bucket: -1, Phase: p})
	g.debugf("phase -> %s", p)
}

// sweep drops removed emitters, preserving the order of the rest.
func (g *Game) sweep() {
	live := g.emitters[:0]
	for _, e := range g.emitters {
		if e.Alive() {
			live = append(live, e)
			continue
		}
		g.destroyEmitter(e)
	}
	clear(g.emitters[len(live):])
	g.emitters = live
}

func (g *Game) clearEmitters() {
	for _, e := range g.emitters {
		g.destroyEmitter(e)
	}
	clear(g.emitters)
	g.emitters = g.emitters[:0]
}

func (g *Game) destroyEmitter(e *Emitter) {
	e.removed = true
	e.expiry.Cancel()
	if e.handle != nil {
		e.handle.Destroy()
		e.handle = nil
	}
}

func (g *Game) emit(ev GameEvent) {
	if g.events != nil {
		g.events.EmitEvent(ev)
	}
}

func setVisible(o Overlay, visible bool) {
	if o != nil {
		o.SetVisible(visible)
	}
}
