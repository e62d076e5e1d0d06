package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// HazardSystem damages the player when its hitbox overlaps any hazard rect.
// Hazards survive the hit.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (h *HazardSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.ColliderComponent.Kind(), func(player ecs.Entity, _ *component.Player, col *component.Collider) {
		ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Hazard, t *component.Transform) {
			if ecs.PendingDestroy(w, e) || !t.Rect.Overlaps(col.Hitbox) {
				return
			}
			DamagePlayer(w, player)
		})
	})
}
