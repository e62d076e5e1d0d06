package ecs

import (
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs/component"
)

// World owns entities, component storage, the simulation clock and the
// deferred command buffer applied between ticks.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
	clock    *common.FrameClock

	pendingDestroy []Entity
	pendingSet     map[Entity]struct{}
	commands       []func(w *World)
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:     make(map[component.ComponentID]componentStore),
		clock:      &common.FrameClock{},
		pendingSet: make(map[Entity]struct{}),
	}
}

// Clock returns the simulation clock. Timers created against it only
// advance when the scheduler steps the world.
func (w *World) Clock() *common.FrameClock {
	if w == nil {
		return nil
	}
	return w.clock
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Query returns alive entities that have every listed component, in
// ascending id order.
func (w *World) Query(kinds ...component.Identifier) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		st, ok := w.stores[k.ID()]
		if !ok || st.len() == 0 {
			return nil
		}
		stores = append(stores, st)
	}
	var out []Entity
	for _, e := range w.entities.live() {
		match := true
		for _, st := range stores {
			if !st.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id alive entity with the given component.
func (w *World) First(kind component.Identifier) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components immediately.
// Systems running inside a tick should use RequestDestroy instead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, st := range w.stores {
		st.remove(e)
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns all alive entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

// RequestDestroy queues an entity for removal at the next Flush. Repeated
// requests for the same entity collapse into one.
func RequestDestroy(w *World, e Entity) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	if _, ok := w.pendingSet[e]; ok {
		return
	}
	w.pendingSet[e] = struct{}{}
	w.pendingDestroy = append(w.pendingDestroy, e)
}

// PendingDestroy reports whether e is queued for removal.
func PendingDestroy(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	_, ok := w.pendingSet[e]
	return ok
}

// Defer queues fn to run at the next Flush, after pending removals. Spawns
// go through here so a new entity is never updated in the tick that made it.
func Defer(w *World, fn func(w *World)) {
	if w == nil || fn == nil {
		return
	}
	w.commands = append(w.commands, fn)
}

// Flush applies queued removals and then queued commands.
func Flush(w *World) {
	if w == nil {
		return
	}
	for _, e := range w.pendingDestroy {
		DestroyEntity(w, e)
	}
	w.pendingDestroy = w.pendingDestroy[:0]
	clear(w.pendingSet)

	cmds := w.commands
	w.commands = nil
	for _, fn := range cmds {
		fn(w)
	}
}
