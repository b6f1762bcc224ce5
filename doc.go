// Package fillrush is the simulation core of a small casual game: emitters
// travel across a play field along a waypoint path, home in on buckets, and
// fill them on arrival. The session is won once every bucket is full.
//
// The core does no rendering, asset loading or audio playback. It drives
// those through narrow interfaces ([GainSink], [ScaleSink], [Overlay],
// [WinDisplay], [SceneStack], [EmitterFactory], [EventSink]) supplied by the
// host, and runs inside an [Ebitengine] loop via [Scene] and [Run].
//
// # Quick start
//
//	g := fillrush.NewGame(fillrush.DefaultGameConfig())
//	g.SetWaypoints([]fillrush.Vec2{{X: 0, Y: 100}, {X: 50, Y: 200}})
//	g.AddBucket("left", fillrush.Vec2{X: -40, Y: 300})
//	g.AddBucket("right", fillrush.Vec2{X: 80, Y: 300})
//
//	scene := fillrush.NewScene(g, 640, 480)
//	scene.DrawFunc = draw
//	fillrush.Run(scene, fillrush.RunConfig{Title: "fillrush", Width: 640, Height: 480})
//
// For full control, call [Game.Tick] yourself once per frame.
//
// # Frame order
//
// Each [Game.Tick] runs, in order: due scheduled tasks (spawn cadence,
// emitter lifetimes, bucket decay checks), emitter steering, arrival
// detection, bucket updates (idle clocks and drain tweens), the win check,
// and finally removal of emitters that died during the frame.
//
// # Buckets
//
// A [Bucket] holds an integer progress in [0, 100]. [Bucket.AddFill] raises
// it and schedules a decay check a few seconds later; if nothing refilled
// the bucket in the meantime, progress drains to zero with a tween (via
// [gween]). Every change is pushed to the bucket's scale and gain sinks.
// Winning locks all buckets in place.
//
// # Timers
//
// All delayed work goes through the session's [Scheduler], which runs on
// simulated time and drops tasks whose owner has been disposed. Nothing in
// the core starts goroutines or reads the wall clock.
//
// # ECS
//
// The ecs subpackage bridges game events and emitter entities into a
// [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package fillrush
