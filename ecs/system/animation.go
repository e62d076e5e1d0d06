package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, f ecs.Frame) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		anim.Completed = false
		n := anim.Len()
		if n == 0 {
			return
		}

		anim.Index += anim.Rate * f.DT
		if anim.Index >= float64(n) {
			anim.Completed = true
			if anim.Mode == component.AnimationOneShot {
				ecs.RequestDestroy(w, e)
				anim.Index = float64(n - 1)
			} else {
				// Reset rather than wrap the remainder, however large dt was.
				anim.Index = 0
			}
		}

		sprite.Key = anim.Current
		sprite.Frame = anim.Frame()
	})
}
