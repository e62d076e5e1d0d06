package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// ProjectileFactory creates a projectile whose rect's top-left sits at pos,
// travelling along dir.
type ProjectileFactory func(w *ecs.World, pos, dir cp.Vector) (ecs.Entity, error)

// ShooterStatusSystem picks attack or idle for every shooter before
// animation advances. The shooter's script makes the call; the stock
// script attacks when the player is within range and there is no cooldown.
type ShooterStatusSystem struct {
	brains *Brains
	inputs map[string]any
}

// NewShooterStatusSystem shares brains with the caller so reloads reach
// it. A nil brains gets its own cache.
func NewShooterStatusSystem(brains *Brains) *ShooterStatusSystem {
	if brains == nil {
		brains = NewBrains()
	}
	return &ShooterStatusSystem{brains: brains, inputs: map[string]any{}}
}

func (s *ShooterStatusSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	target, hasTarget := playerCenter(w)
	ecs.ForEach3(w,
		component.ShooterComponent.Kind(),
		component.TransformComponent.Kind(),
		component.AnimationComponent.Kind(),
		func(_ ecs.Entity, shooter *component.Shooter, t *component.Transform, anim *component.Animation) {
			shooter.Status = component.StatusIdle
			if s.attack(shooter, centerOf(t), target, hasTarget) {
				shooter.Status = component.StatusAttack
			}
			anim.Play(string(shooter.Status))
		})
}

func (s *ShooterStatusSystem) attack(shooter *component.Shooter, center, target cp.Vector, hasTarget bool) bool {
	brain := s.brains.get(scriptOr(shooter.Script, DefaultShooterScript), shooterBrain)
	d := target.Sub(center)
	cooling := shooter.Cooldown.Active()
	s.inputs["has_target"] = hasTarget
	s.inputs["dx"] = d.X
	s.inputs["dy"] = d.Y
	s.inputs["attack_range"] = shooter.Range
	s.inputs["cooldown_active"] = cooling
	fallback := hasTarget && !cooling && d.Length() < shooter.Range
	return brain.decideOr(s.inputs, fallback)
}

// ShooterFireSystem runs after animation. A completed cycle that fired
// starts the cooldown; reaching the shot frame while attacking fires once.
// The projectile is spawned at the end of the tick so it is not advanced in
// the tick that created it.
type ShooterFireSystem struct {
	spawn ProjectileFactory
}

func NewShooterFireSystem(spawn ProjectileFactory) *ShooterFireSystem {
	return &ShooterFireSystem{spawn: spawn}
}

func (s *ShooterFireSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.ShooterComponent.Kind(),
		component.TransformComponent.Kind(),
		component.AnimationComponent.Kind(),
		func(e ecs.Entity, shooter *component.Shooter, t *component.Transform, anim *component.Animation) {
			if anim.Completed && shooter.HasShot {
				shooter.Cooldown.Activate()
				shooter.HasShot = false
			}

			if anim.Frame() == shooter.ShotFrame && shooter.Status == component.StatusAttack && !shooter.HasShot {
				shooter.HasShot = true
				s.fire(w, e, shooter, t)
			}

			shooter.Cooldown.Update()
		})
}

func (s *ShooterFireSystem) fire(w *ecs.World, e ecs.Entity, shooter *component.Shooter, t *component.Transform) {
	dir := cp.Vector{X: 1}
	offset := shooter.OffsetRight
	if shooter.Facing == component.OrientLeft {
		dir = cp.Vector{X: -1}
		offset = shooter.OffsetLeft
	}
	pos := centerOf(t).Add(offset)

	w.Events().Push(ecs.Event{Type: ecs.EventShot, Entity: e, Data: pos})
	if s.spawn == nil {
		return
	}
	ecs.Defer(w, func(w *ecs.World) {
		if _, err := s.spawn(w, pos, dir); err != nil {
			log.Printf("shooter: spawn projectile: %v", err)
		}
	})
}

func playerCenter(w *ecs.World) (cp.Vector, bool) {
	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			return centerOf(t), true
		}
	}
	return cp.Vector{}, false
}

func centerOf(t *component.Transform) cp.Vector {
	c := common.Center(t.Rect)
	return cp.Vector{X: float64(c.X), Y: float64(c.Y)}
}
