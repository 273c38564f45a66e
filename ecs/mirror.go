package ecs

import (
	"github.com/phanxgames/pinboard"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ItemState is the component a Mirror keeps for each item.
type ItemState struct {
	ItemID   uint32
	ParentID uint32 // 0 until the item has been placed, stamped or restored
	Carried  bool
}

// ItemComponent holds an ItemState on mirrored entities.
var ItemComponent = donburi.NewComponentType[ItemState]()

// Mirror maintains one entity per item seen in carry events. Removed items,
// and any mirrored descendants removed with them, lose their entity.
type Mirror struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	query    *donburi.Query
}

// NewMirror creates a Mirror and subscribes it to CarryEventType in world.
func NewMirror(world donburi.World) *Mirror {
	m := &Mirror{
		world:    world,
		entities: make(map[uint32]donburi.Entity),
		query:    donburi.NewQuery(filter.Contains(ItemComponent)),
	}
	CarryEventType.Subscribe(world, m.handle)
	return m
}

func (m *Mirror) handle(w donburi.World, e pinboard.CarryEvent) {
	// A cancel without a parent means the carried clone was discarded.
	if e.Type == pinboard.EventRemove || (e.Type == pinboard.EventCancel && e.ParentID == 0) {
		m.forget(w, e.ItemID)
		for _, id := range e.Removed {
			m.forget(w, id)
		}
		return
	}

	ent, ok := m.entities[e.ItemID]
	if !ok {
		ent = w.Create(ItemComponent)
		m.entities[e.ItemID] = ent
	}
	entry := w.Entry(ent)
	state := ItemComponent.Get(entry)
	state.ItemID = e.ItemID
	switch e.Type {
	case pinboard.EventPickup:
		state.Carried = true
	case pinboard.EventPlace, pinboard.EventCancel:
		state.Carried = false
		state.ParentID = e.ParentID
	case pinboard.EventStamp:
		state.ParentID = e.ParentID
	}
}

func (m *Mirror) forget(w donburi.World, id uint32) {
	if ent, ok := m.entities[id]; ok {
		w.Remove(ent)
		delete(m.entities, id)
	}
}

// State returns the mirrored state of an item.
func (m *Mirror) State(itemID uint32) (ItemState, bool) {
	ent, ok := m.entities[itemID]
	if !ok || !m.world.Valid(ent) {
		return ItemState{}, false
	}
	return *ItemComponent.Get(m.world.Entry(ent)), true
}

// Len returns the number of mirrored items.
func (m *Mirror) Len() int {
	return m.query.Count(m.world)
}

// Carried returns the IDs of items currently marked as carried.
func (m *Mirror) Carried() []uint32 {
	var ids []uint32
	m.query.Each(m.world, func(entry *donburi.Entry) {
		if s := ItemComponent.Get(entry); s.Carried {
			ids = append(ids, s.ItemID)
		}
	})
	return ids
}
