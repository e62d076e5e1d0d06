package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// PlayerStatusSystem derives the animation status from velocity and picks
// the matching sequence for the current facing. While invulnerable the
// sprite is drawn as a silhouette.
type PlayerStatusSystem struct{}

func NewPlayerStatusSystem() *PlayerStatusSystem {
	return &PlayerStatusSystem{}
}

func (p *PlayerStatusSystem) Update(w *ecs.World, _ ecs.Frame) {
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.AnimationComponent.Kind(),
		func(e ecs.Entity, player *component.Player, vel *component.Velocity, anim *component.Animation) {
			player.Status = PlayerStatus(vel.Direction, player.FallThreshold)
			anim.Play(string(player.Status) + "_" + string(player.Orientation))

			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				inv, _ := ecs.Get(w, e, component.InvulnerableComponent.Kind())
				sprite.Silhouette = inv.Active()
			}
		})
}
