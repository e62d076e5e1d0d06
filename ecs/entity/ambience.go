package entity

import (
	"fmt"
	"image"

	"github.com/aquilax/go-perlin"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

const (
	DecorationWaterTop = "water_top"
	DecorationWater    = "water"
	DecorationPalmFG   = "palm_fg"
	DecorationPalmBG   = "palm_bg"
)

// NewDecoration places a looping background or foreground sprite at the
// tile whose top-left is topLeft, shifted by the decoration's vertical offset.
func NewDecoration(ctx *Context, name string, topLeft image.Point) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec, ok := ctx.Catalog.World.Decorations[name]
	if !ok {
		return 0, fmt.Errorf("decoration: %q: %w", name, ErrUnknownKind)
	}

	rect := common.RectAt(topLeft.X, topLeft.Y+spec.OffsetY, spec.Sprite.FrameW, spec.Sprite.FrameH)
	e := ecs.CreateEntity(w)
	if err := addTransform(w, e, "decoration", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := addVisual(w, e, "decoration", spec.Sprite, spec.Animation, layerOr(spec.RenderLayer, common.LayerMain), component.AnimationLoop); err != nil {
		return 0, err
	}
	return e, nil
}

// NewTerrainTile adds the drawable for one solid cell. Collision comes from
// the level geometry, not from this entity.
func NewTerrainTile(ctx *Context, cell int, topLeft image.Point) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	rect := common.RectAt(topLeft.X, topLeft.Y, common.TileSize, common.TileSize)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.StaticTileComponent.Kind(), &component.StaticTile{Cell: cell}); err != nil {
		return 0, fmt.Errorf("terrain: add static tile: %w", err)
	}
	if err := addTransform(w, e, "terrain", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	sprite := &component.Sprite{Sheet: "terrain"}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("terrain: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: common.LayerMain}); err != nil {
		return 0, fmt.Errorf("terrain: add render layer: %w", err)
	}
	return e, nil
}

// NewCloud places a cloud at (x, y) drifting left at a random speed until
// its left edge reaches leftLimit.
func NewCloud(ctx *Context, x, y, leftLimit int) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec := ctx.Catalog.Clouds
	if len(spec.Sprites) == 0 {
		return 0, fmt.Errorf("cloud: no sprites: %w", ErrUnknownKind)
	}

	sprite := spec.Sprites[ctx.Rand.Intn(len(spec.Sprites))]
	speed := spec.MinSpeed
	if spread := int(spec.MaxSpeed - spec.MinSpeed); spread > 0 {
		speed += float64(ctx.Rand.Intn(spread + 1))
	}
	rect := common.RectAt(x, y, sprite.FrameW, sprite.FrameH)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CloudComponent.Kind(), &component.Cloud{}); err != nil {
		return 0, fmt.Errorf("cloud: add cloud: %w", err)
	}
	if err := addTransform(w, e, "cloud", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Direction: cp.Vector{X: -1}, Speed: speed}); err != nil {
		return 0, fmt.Errorf("cloud: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.LeftLimitComponent.Kind(), &component.LeftLimit{X: leftLimit}); err != nil {
		return 0, fmt.Errorf("cloud: add left limit: %w", err)
	}
	if err := addVisual(w, e, "cloud", sprite, noAnimation, common.LayerClouds, component.AnimationLoop); err != nil {
		return 0, err
	}
	return e, nil
}

// NewCloudSpawner seeds the sky band with the starting clouds and adds the
// spawner that keeps feeding new ones from the right. band spans the
// horizontal extent of the level and the heights clouds may take.
func NewCloudSpawner(ctx *Context, band image.Rectangle, seed int64) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec := ctx.Catalog.Clouds

	tm, err := common.NewTimer(w.Clock(), spec.SpawnInterval.Duration())
	if err != nil {
		return 0, fmt.Errorf("cloud spawner: timer: %w", err)
	}
	sp := &component.CloudSpawner{
		Timer:    tm,
		Noise:    perlin.NewPerlin(2, 2, 3, seed),
		Step:     0.37,
		MinY:     band.Min.Y,
		MaxY:     band.Max.Y,
		SpawnX:   band.Max.X + spec.MarginRight,
		LeftX:    band.Min.X - spec.MarginLeft,
		MinSpeed: spec.MinSpeed,
		MaxSpeed: spec.MaxSpeed,
	}

	// Starting clouds are spread evenly so the sky is not empty on load.
	if spec.StartCount > 0 {
		gap := (sp.SpawnX - sp.LeftX) / spec.StartCount
		for i := 0; i < spec.StartCount; i++ {
			x := sp.LeftX + gap/2 + i*gap
			if _, err := NewCloud(ctx, x, sp.NextHeight(), sp.LeftX); err != nil {
				return 0, err
			}
		}
	}
	sp.Timer.Activate()

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CloudSpawnerComponent.Kind(), sp); err != nil {
		return 0, fmt.Errorf("cloud spawner: add spawner: %w", err)
	}
	return e, nil
}

// CloudFactory adapts NewCloud to the spawner system's hook.
func CloudFactory(ctx *Context, leftLimit int) func(w *ecs.World, x, y int) (ecs.Entity, error) {
	return func(w *ecs.World, x, y int) (ecs.Entity, error) {
		return NewCloud(ctx.on(w), x, y, leftLimit)
	}
}

// NewCamera adds the camera that follows the player.
func NewCamera(ctx *Context) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}
