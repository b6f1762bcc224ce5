// Package ecs provides Donburi adapters for fillrush.
//
// [NewDonburiStore] bridges game events (spawn, expire, arrival, fill,
// decay, win, phase) into a [Donburi] world as typed events. Subscribe to
// [GameEventType] in your ECS systems to receive them.
//
// [NewDonburiFactory] makes each spawned emitter a Donburi entity carrying a
// [Transform] component that the game keeps in sync every frame and removes
// when the emitter goes away.
//
// Usage:
//
//	world := donburi.NewWorld()
//	game.SetEventSink(ecs.NewDonburiStore(world))
//	game.SetEmitterFactory(ecs.NewDonburiFactory(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
