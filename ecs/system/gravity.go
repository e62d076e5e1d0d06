package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// GravitySystem accumulates vertical velocity. There is no terminal
// velocity; landing zeroes it.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (g *GravitySystem) Update(w *ecs.World, f ecs.Frame) {
	ecs.ForEach2(w, component.GravityComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, grav *component.Gravity, vel *component.Velocity) {
		vel.Direction.Y += grav.Accel * f.DT
	})
}
