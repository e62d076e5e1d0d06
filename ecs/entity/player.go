package entity

import (
	"fmt"
	"image"

	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/milk9111/piratemaker/prefabs"
)

// NewPlayer places the player with its render rect's top-left at topLeft.
// Pos tracks the hitbox centre.
func NewPlayer(ctx *Context, topLeft image.Point) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec := ctx.Catalog.Player

	rect := common.RectAt(topLeft.X, topLeft.Y, spec.Sprite.FrameW, spec.Sprite.FrameH)
	if rect.Empty() {
		return 0, fmt.Errorf("player: sprite size %dx%d: %w", spec.Sprite.FrameW, spec.Sprite.FrameH, ecs.ErrEmptyRect)
	}
	invul, err := common.NewTimer(w.Clock(), spec.Invulnerable.Duration())
	if err != nil {
		return 0, fmt.Errorf("player: invulnerability timer: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Orientation:   component.OrientRight,
		Status:        component.StatusIdle,
		JumpImpulse:   spec.JumpImpulse,
		FallThreshold: spec.FallThreshold,
		DamageAmount:  spec.Damage,
		DamageKick:    spec.DamageKick,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := addTransform(w, e, "player", vec(common.Center(rect)), rect); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Hitbox:      common.Inflate(rect, -spec.HitboxInsetX, 0),
		GroundDepth: spec.GroundDepth,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Speed: spec.Speed}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: spec.Gravity}); err != nil {
		return 0, fmt.Errorf("player: add gravity: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
		Current:   spec.Health.Current,
		Max:       spec.Health.Max,
		BarLength: spec.Health.BarLength,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Timer: invul}); err != nil {
		return 0, fmt.Errorf("player: add invulnerable: %w", err)
	}
	if err := addVisual(w, e, "player", spec.Sprite, spec.Animation, layerOr(spec.RenderLayer, common.LayerMain), component.AnimationLoop); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
		Names: append([]string(nil), spec.Audio...),
		Play:  make([]bool, len(spec.Audio)),
	}); err != nil {
		return 0, fmt.Errorf("player: add audio: %w", err)
	}

	return e, nil
}

// ApplyPlayerTuning copies reloaded movement and damage tuning onto a live
// player without touching its position, health or timers.
func ApplyPlayerTuning(w *ecs.World, e ecs.Entity, spec prefabs.PlayerSpec) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		p.JumpImpulse = spec.JumpImpulse
		p.FallThreshold = spec.FallThreshold
		p.DamageAmount = spec.Damage
		p.DamageKick = spec.DamageKick
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.Speed = spec.Speed
	}
	if g, ok := ecs.Get(w, e, component.GravityComponent.Kind()); ok {
		g.Accel = spec.Gravity
	}
	if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok && spec.GroundDepth > 0 {
		c.GroundDepth = spec.GroundDepth
	}
}
