package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem {
	return &InvulnerableSystem{}
}

func (s *InvulnerableSystem) Update(w *ecs.World, _ ecs.Frame) {
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(_ ecs.Entity, inv *component.Invulnerable) {
		if inv.Timer != nil {
			inv.Timer.Update()
		}
	})
}
