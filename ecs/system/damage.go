package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// DamagePlayer hurts the player unless it is invulnerable. A hit starts the
// invulnerability window, kicks the player upward and costs DamageAmount
// health. It reports whether the hit landed.
func DamagePlayer(w *ecs.World, e ecs.Entity) bool {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind())
	if ok && inv.Active() {
		return false
	}
	if ok && inv.Timer != nil {
		inv.Timer.Activate()
	}

	if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		vel.Direction.Y -= player.DamageKick
	}
	if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		health.Hurt(player.DamageAmount)
	}
	if audio, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		audio.Request(component.SoundHit)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Entity: e})
	return true
}

// HealPlayer restores health, never past the maximum.
func HealPlayer(w *ecs.World, e ecs.Entity, amount int) {
	if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		health.Heal(amount)
	}
}
