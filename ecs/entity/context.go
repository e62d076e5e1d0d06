package entity

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/milk9111/piratemaker/prefabs"
)

var ErrUnknownKind = errors.New("entity: unknown kind")

// Context is what every constructor needs: the world to populate, tuning,
// the level geometry for spawn checks and a seeded random source.
type Context struct {
	World    *ecs.World
	Catalog  *prefabs.Catalog
	Geometry *ecs.Geometry
	Rand     *rand.Rand
}

func (c *Context) validate() error {
	if c == nil || c.World == nil {
		return errors.New("entity: nil world")
	}
	if c.Catalog == nil {
		return errors.New("entity: nil catalog")
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(1))
	}
	return nil
}

// on returns a copy of the context bound to w, for factories handed to
// systems that pass their own world.
func (c *Context) on(w *ecs.World) *Context {
	bound := *c
	bound.World = w
	return &bound
}

// noAnimation is used for single-image sprites.
var noAnimation prefabs.AnimationSpec

func vec(p image.Point) cp.Vector {
	return cp.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// addVisual attaches sprite, render layer and, when the prefab spec has
// sequences, an animation.
func addVisual(w *ecs.World, e ecs.Entity, name string, sprite prefabs.SpriteSpec, anim prefabs.AnimationSpec, layer int, mode component.AnimationMode) error {
	s := &component.Sprite{Sheet: sprite.Sheet, Key: anim.Current}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), s); err != nil {
		return fmt.Errorf("%s: add sprite: %w", name, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("%s: add render layer: %w", name, err)
	}
	if len(anim.Sequences) == 0 {
		return nil
	}

	rate := anim.Rate
	if rate == 0 {
		rate = common.AnimationSpeed
	}
	a, err := component.NewAnimation(copySequences(anim.Sequences), anim.Current, rate, mode)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), a); err != nil {
		return fmt.Errorf("%s: add animation: %w", name, err)
	}
	return nil
}

func addTransform(w *ecs.World, e ecs.Entity, name string, pos cp.Vector, rect image.Rectangle) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos, Rect: rect}); err != nil {
		return fmt.Errorf("%s: add transform: %w", name, err)
	}
	return nil
}

func copySequences(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func layerOr(spec prefabs.RenderLayerSpec, fallback int) int {
	if spec.Index != 0 {
		return spec.Index
	}
	return fallback
}
