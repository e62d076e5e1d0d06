package entity

import (
	"fmt"
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// NewTooth places a patrolling enemy one tile tall with its top-left at
// topLeft, walking in a random direction. A tooth with no floor under it
// is queued for removal at once.
func NewTooth(ctx *Context, topLeft image.Point) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec := ctx.Catalog.Tooth

	rect := common.RectAt(topLeft.X, topLeft.Y, spec.Sprite.FrameW, common.TileSize)
	dir := 1.0
	orient := component.OrientRight
	if ctx.Rand.Intn(2) == 0 {
		dir = -1
		orient = component.OrientLeft
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{Orientation: orient, Script: spec.Script}); err != nil {
		return 0, fmt.Errorf("tooth: add patrol: %w", err)
	}
	if err := addTransform(w, e, "tooth", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{
		Direction: cp.Vector{X: dir},
		Speed:     spec.Speed,
	}); err != nil {
		return 0, fmt.Errorf("tooth: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return 0, fmt.Errorf("tooth: add hazard: %w", err)
	}
	anim := spec.Animation
	anim.Current = "run_" + string(orient)
	if err := addVisual(w, e, "tooth", spec.Sprite, anim, layerOr(spec.RenderLayer, common.LayerMain), component.AnimationLoop); err != nil {
		return 0, err
	}

	below := common.MidBottom(rect).Add(image.Pt(0, spec.FloorDepth))
	if !ctx.Geometry.ContainsPoint(below) {
		ecs.RequestDestroy(w, e)
	}
	return e, nil
}

// NewShell places a stationary shooter. Right-facing shells use mirrored
// frames.
func NewShell(ctx *Context, topLeft image.Point, facing component.Orientation) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	if facing != component.OrientLeft && facing != component.OrientRight {
		return 0, fmt.Errorf("shell: facing %q: %w", facing, ErrUnknownKind)
	}
	w := ctx.World
	spec := ctx.Catalog.Shell

	cooldown, err := common.NewTimer(w.Clock(), spec.Cooldown.Duration())
	if err != nil {
		return 0, fmt.Errorf("shell: cooldown timer: %w", err)
	}
	rect := common.RectAt(topLeft.X, topLeft.Y, spec.Sprite.FrameW, common.TileSize)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ShooterComponent.Kind(), &component.Shooter{
		Facing:      facing,
		Status:      component.StatusIdle,
		Cooldown:    cooldown,
		Range:       spec.Range,
		ShotFrame:   spec.ShotFrame,
		OffsetLeft:  cp.Vector{X: spec.OffsetLeft.X, Y: spec.OffsetLeft.Y},
		OffsetRight: cp.Vector{X: spec.OffsetRight.X, Y: spec.OffsetRight.Y},
		Script:      spec.Script,
	}); err != nil {
		return 0, fmt.Errorf("shell: add shooter: %w", err)
	}
	if err := addTransform(w, e, "shell", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := addVisual(w, e, "shell", spec.Sprite, spec.Animation, layerOr(spec.RenderLayer, common.LayerMain), component.AnimationLoop); err != nil {
		return 0, err
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.FlipX = facing == component.OrientRight
	}
	return e, nil
}

// NewPearl creates a projectile with its top-left at pos moving along dir.
// It hurts the player on contact and expires after its lifetime.
func NewPearl(ctx *Context, pos, dir cp.Vector) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec := ctx.Catalog.Pearl

	life, err := common.NewTimer(w.Clock(), spec.Lifetime.Duration())
	if err != nil {
		return 0, fmt.Errorf("pearl: lifetime timer: %w", err)
	}
	rect := common.RectAt(common.Round(pos.X), common.Round(pos.Y), spec.Sprite.FrameW, spec.Sprite.FrameH)

	e := ecs.CreateEntity(w)
	if err := addTransform(w, e, "pearl", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Direction: dir, Speed: spec.Speed}); err != nil {
		return 0, fmt.Errorf("pearl: add velocity: %w", err)
	}
	life.Activate()
	if err := ecs.Add(w, e, component.LifetimeComponent.Kind(), &component.Lifetime{Timer: life}); err != nil {
		return 0, fmt.Errorf("pearl: add lifetime: %w", err)
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return 0, fmt.Errorf("pearl: add hazard: %w", err)
	}
	if err := addVisual(w, e, "pearl", spec.Sprite, noAnimation, layerOr(spec.RenderLayer, common.LayerMain), component.AnimationLoop); err != nil {
		return 0, err
	}
	return e, nil
}

// PearlFactory adapts NewPearl to the shooter system's spawn hook.
func PearlFactory(ctx *Context) func(w *ecs.World, pos, dir cp.Vector) (ecs.Entity, error) {
	return func(w *ecs.World, pos, dir cp.Vector) (ecs.Entity, error) {
		return NewPearl(ctx.on(w), pos, dir)
	}
}

// NewSpikes places a static hazard resting on the bottom of the tile at
// topLeft.
func NewSpikes(ctx *Context, topLeft image.Point) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec := ctx.Catalog.World.Spikes

	rect := common.RectAt(topLeft.X, topLeft.Y+common.TileSize-spec.FrameH, spec.FrameW, spec.FrameH)
	e := ecs.CreateEntity(w)
	if err := addTransform(w, e, "spikes", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return 0, fmt.Errorf("spikes: add hazard: %w", err)
	}
	if err := addVisual(w, e, "spikes", spec, noAnimation, common.LayerMain, component.AnimationLoop); err != nil {
		return 0, err
	}
	return e, nil
}
