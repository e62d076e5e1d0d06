package system

import (
	"image"
	"log"

	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// EffectFactory creates a one-shot effect centred on a point.
type EffectFactory func(w *ecs.World, center image.Point) (ecs.Entity, error)

// PickupSystem collects coins touched by the player's hitbox: the player is
// healed by the coin's value and a particle replaces the coin.
type PickupSystem struct {
	effect EffectFactory
}

func NewPickupSystem(effect EffectFactory) *PickupSystem {
	return &PickupSystem{effect: effect}
}

func (p *PickupSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.ColliderComponent.Kind(), func(player ecs.Entity, _ *component.Player, col *component.Collider) {
		ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, coin *component.Coin, t *component.Transform) {
			if ecs.PendingDestroy(w, e) || !t.Rect.Overlaps(col.Hitbox) {
				return
			}

			HealPlayer(w, player, coin.Value)
			if audio, ok := ecs.Get(w, player, component.AudioComponent.Kind()); ok {
				audio.Request(component.SoundCoin)
			}
			w.Events().Push(ecs.Event{Type: ecs.EventCoinCollected, Entity: player, Data: coin.Kind})
			ecs.RequestDestroy(w, e)

			if p.effect == nil {
				return
			}
			center := common.Center(t.Rect)
			ecs.Defer(w, func(w *ecs.World) {
				if _, err := p.effect(w, center); err != nil {
					log.Printf("pickup: spawn particle: %v", err)
				}
			})
		})
	})
}
