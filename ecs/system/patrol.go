package system

import (
	"image"

	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// PatrolSystem samples the tile ahead of each walker and the floor under
// its leading foot, then asks the walker's script whether to turn. The
// stock script turns at walls and ledges. Both directions use the same two
// samples mirrored.
type PatrolSystem struct {
	brains *Brains
	inputs map[string]any
}

// NewPatrolSystem shares brains with the caller so reloads reach it. A nil
// brains gets its own cache.
func NewPatrolSystem(brains *Brains) *PatrolSystem {
	if brains == nil {
		brains = NewBrains()
	}
	return &PatrolSystem{brains: brains, inputs: map[string]any{}}
}

func (p *PatrolSystem) Update(w *ecs.World, f ecs.Frame) {
	ecs.ForEach3(w,
		component.PatrolComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, patrol *component.Patrol, t *component.Transform, vel *component.Velocity) {
			r := t.Rect
			brain := p.brains.get(scriptOr(patrol.Script, DefaultPatrolScript), patrolBrain)

			if vel.Direction.X > 0 {
				wall := f.Geometry.ContainsPoint(common.MidRight(r).Add(image.Pt(1, 0)))
				floor := f.Geometry.ContainsPoint(common.BottomRight(r).Add(image.Pt(1, 1)))
				if p.turn(brain, wall, floor) {
					vel.Direction.X = -vel.Direction.X
					patrol.Orientation = component.OrientLeft
				}
			}

			if vel.Direction.X < 0 {
				wall := f.Geometry.ContainsPoint(common.MidLeft(r).Add(image.Pt(-1, 0)))
				floor := f.Geometry.ContainsPoint(common.BottomLeft(r).Add(image.Pt(-1, 1)))
				if p.turn(brain, wall, floor) {
					vel.Direction.X = -vel.Direction.X
					patrol.Orientation = component.OrientRight
				}
			}

			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				anim.Play("run_" + string(patrol.Orientation))
			}
		})
}

// turn falls back to turning at walls and ledges when the script cannot
// answer, so a broken script never walks enemies off the map.
func (p *PatrolSystem) turn(brain *Brain, wall, floor bool) bool {
	p.inputs["wall_ahead"] = wall
	p.inputs["floor_ahead"] = floor
	return brain.decideOr(p.inputs, wall || !floor)
}
