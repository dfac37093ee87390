// Package ecs provides ECS adapters for joystick reporting.
//
// [NewDonburiReporter] bridges every Status a stick reports into a [Donburi]
// world as a typed event. Subscribe to [StatusEventType] in your ECS systems
// to receive them. [NewEntityReporter] additionally keeps the latest Status
// in a [StickComponent] so systems can poll it.
//
// Usage:
//
//	player := world.Create(ecs.StickComponent)
//	stick := joystick.New(opts, ecs.NewEntityReporter(world, player))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
