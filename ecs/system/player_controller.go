package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// PlayerControllerSystem turns held keys into horizontal intent, facing and
// the jump impulse. Jumping needs the grounded flag from the previous tick.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ColliderComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity, col *component.Collider) {
			switch {
			case input.Right:
				vel.Direction.X = 1
				player.Orientation = component.OrientRight
			case input.Left:
				vel.Direction.X = -1
				player.Orientation = component.OrientLeft
			default:
				vel.Direction.X = 0
			}

			if input.Jump && col.Grounded {
				vel.Direction.Y = player.JumpImpulse
				if audio, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
					audio.Request(component.SoundJump)
				}
			}
		})
}
