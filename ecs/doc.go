// Package ecs provides ECS adapters for pinboard carry sessions.
//
// [NewDonburiSink] bridges carry events (pickup, place, stamp, remove,
// cancel) into a [Donburi] world as typed events. Subscribe to
// [CarryEventType] in your ECS systems to receive them. [NewMirror] is one
// such subscriber: it keeps an entity per item the session has touched,
// holding the item's last known parent and carry state.
//
// Usage:
//
//	session.SetEventSink(ecs.NewDonburiSink(world))
//	mirror := ecs.NewMirror(world)
//	// each frame:
//	ecs.CarryEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
