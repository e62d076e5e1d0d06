package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// LifetimeSystem requests removal of entities whose lifetime timer ran out
// or that drifted past their left limit.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, life *component.Lifetime) {
		if life.Timer == nil {
			ecs.RequestDestroy(w, e)
			return
		}
		life.Timer.Update()
		if !life.Timer.Active() {
			ecs.RequestDestroy(w, e)
		}
	})

	ecs.ForEach2(w, component.LeftLimitComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, limit *component.LeftLimit, t *component.Transform) {
		if t.Rect.Min.X <= limit.X {
			ecs.RequestDestroy(w, e)
		}
	})
}
