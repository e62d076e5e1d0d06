package entity

import (
	"fmt"
	"image"

	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

const (
	CoinGold    = "gold"
	CoinSilver  = "silver"
	CoinDiamond = "diamond"
)

// NewCoin places a spinning coin of the given kind centred on center.
func NewCoin(ctx *Context, kind string, center image.Point) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec, ok := ctx.Catalog.Coins.Kinds[kind]
	if !ok {
		return 0, fmt.Errorf("coin: %q: %w", kind, ErrUnknownKind)
	}

	rect := common.WithCenter(common.RectAt(0, 0, spec.Sprite.FrameW, spec.Sprite.FrameH), center)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{Kind: kind, Value: spec.Value}); err != nil {
		return 0, fmt.Errorf("coin: add coin: %w", err)
	}
	if err := addTransform(w, e, "coin", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := addVisual(w, e, "coin", spec.Sprite, spec.Animation, layerOr(ctx.Catalog.Coins.RenderLayer, common.LayerMain), component.AnimationLoop); err != nil {
		return 0, err
	}
	return e, nil
}

// NewParticle plays the pickup burst once, centred on center, then removes
// itself.
func NewParticle(ctx *Context, center image.Point) (ecs.Entity, error) {
	if err := ctx.validate(); err != nil {
		return 0, err
	}
	w := ctx.World
	spec := ctx.Catalog.Coins.Particle

	rect := common.WithCenter(common.RectAt(0, 0, spec.Sprite.FrameW, spec.Sprite.FrameH), center)
	e := ecs.CreateEntity(w)
	if err := addTransform(w, e, "particle", vec(rect.Min), rect); err != nil {
		return 0, err
	}
	if err := addVisual(w, e, "particle", spec.Sprite, spec.Animation, layerOr(ctx.Catalog.Coins.RenderLayer, common.LayerMain), component.AnimationOneShot); err != nil {
		return 0, err
	}
	return e, nil
}

// ParticleFactory adapts NewParticle to the pickup system's spawn hook.
func ParticleFactory(ctx *Context) func(w *ecs.World, center image.Point) (ecs.Entity, error) {
	return func(w *ecs.World, center image.Point) (ecs.Entity, error) {
		return NewParticle(ctx.on(w), center)
	}
}
