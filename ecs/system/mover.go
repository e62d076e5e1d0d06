package system

import (
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// MoverSystem integrates constant-velocity entities that have no collider:
// walkers, projectiles and clouds. Pos is the rect's top-left.
type MoverSystem struct{}

func NewMoverSystem() *MoverSystem {
	return &MoverSystem{}
}

func (m *MoverSystem) Update(w *ecs.World, f ecs.Frame) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, vel *component.Velocity) {
		if ecs.Has(w, e, component.ColliderComponent.Kind()) {
			return
		}
		t.Pos = t.Pos.Add(vel.Direction.Mult(vel.Speed * f.DT))
		t.Rect = common.MoveTo(t.Rect, common.Round(t.Pos.X), common.Round(t.Pos.Y))
	})
}
