package ecs

import (
	"github.com/phanxgames/fillrush"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// GameEventType is the Donburi event type for fillrush game events.
var GameEventType = events.NewEventType[fillrush.GameEvent]()

// TransformData is the position and heading of an emitter entity.
type TransformData struct {
	Position fillrush.Vec2
	Heading  fillrush.Vec2
}

// Transform is the component attached to every emitter entity.
var Transform = donburi.NewComponentType[TransformData]()

// Emitters matches every entity created by a Donburi factory.
var Emitters = donburi.NewQuery(filter.Contains(Transform))

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Game events are published to GameEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) fillrush.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event fillrush.GameEvent) {
	GameEventType.Publish(s.world, event)
}

type donburiFactory struct {
	world donburi.World
}

// NewDonburiFactory creates an EmitterFactory that backs each emitter with a
// Donburi entity holding a Transform.
func NewDonburiFactory(world donburi.World) fillrush.EmitterFactory {
	return &donburiFactory{world: world}
}

func (f *donburiFactory) Spawn(pos, heading fillrush.Vec2) fillrush.EmitterHandle {
	entity := f.world.Create(Transform)
	Transform.SetValue(f.world.Entry(entity), TransformData{Position: pos, Heading: heading})
	return &EntityHandle{world: f.world, entity: entity}
}

// EntityHandle is the EmitterHandle returned by a Donburi factory.
type EntityHandle struct {
	world  donburi.World
	entity donburi.Entity
}

// Entity returns the backing Donburi entity.
func (h *EntityHandle) Entity() donburi.Entity {
	return h.entity
}

// SetPosition implements fillrush.EmitterHandle. Removed entities are ignored.
func (h *EntityHandle) SetPosition(pos fillrush.Vec2) {
	if !h.world.Valid(h.entity) {
		return
	}
	Transform.Get(h.world.Entry(h.entity)).Position = pos
}

// Destroy implements fillrush.EmitterHandle.
func (h *EntityHandle) Destroy() {
	if h.world.Valid(h.entity) {
		h.world.Remove(h.entity)
	}
}
