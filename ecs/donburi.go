// Package ecs provides ECS adapters for joystick.
package ecs

import (
	"github.com/phanxgames/joystick"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StatusEventType is the Donburi event type for stick updates.
// Subscribe to this in your ECS systems to receive every reported Status.
var StatusEventType = events.NewEventType[joystick.Status]()

// StickComponent holds the latest Status of one stick on an entity.
var StickComponent = donburi.NewComponentType[joystick.Status]()

type donburiReporter struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiReporter creates a Reporter backed by a Donburi world.
// Statuses are published to StatusEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiReporter(world donburi.World) joystick.Reporter {
	return &donburiReporter{world: world, entity: donburi.Null}
}

// NewEntityReporter creates a Reporter that publishes like NewDonburiReporter
// and also stores the latest Status in the StickComponent of entity. The
// entity must carry StickComponent.
func NewEntityReporter(world donburi.World, entity donburi.Entity) joystick.Reporter {
	return &donburiReporter{world: world, entity: entity}
}

func (r *donburiReporter) Report(s joystick.Status) {
	if r.entity != donburi.Null && r.world.Valid(r.entity) {
		entry := r.world.Entry(r.entity)
		if entry.HasComponent(StickComponent) {
			StickComponent.SetValue(entry, s)
		}
	}
	StatusEventType.Publish(r.world, s)
}
