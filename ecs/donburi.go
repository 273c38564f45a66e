package ecs

import (
	"github.com/phanxgames/pinboard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CarryEventType is the Donburi event type for pinboard carry events.
var CarryEventType = events.NewEventType[pinboard.CarryEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Carry
// events are published to CarryEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pinboard.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pinboard.CarryEvent) {
	CarryEventType.Publish(s.world, event)
}
