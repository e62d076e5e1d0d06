package system

import (
	"image"

	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// BodySystem moves collider entities one axis at a time and resolves each
// axis against the level geometry before the next, then refreshes the
// grounded flag. Pos is the hitbox centre; Rect follows the hitbox.
type BodySystem struct{}

func NewBodySystem() *BodySystem {
	return &BodySystem{}
}

func (b *BodySystem) Update(w *ecs.World, f ecs.Frame) {
	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ColliderComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, vel *component.Velocity, col *component.Collider) {
			step := vel.Speed * f.DT

			t.Pos.X += vel.Direction.X * step
			col.Hitbox = common.WithCenterX(col.Hitbox, common.Round(t.Pos.X))
			t.Rect = common.WithCenterX(t.Rect, common.CenterX(col.Hitbox))
			resolveHorizontal(f.Geometry, t, vel, col)

			t.Pos.Y += vel.Direction.Y * step
			col.Hitbox = common.WithCenterY(col.Hitbox, common.Round(t.Pos.Y))
			t.Rect = common.WithCenterY(t.Rect, common.CenterY(col.Hitbox))
			resolveVertical(f.Geometry, t, vel, col)

			col.Grounded = f.Geometry.AnyOverlap(groundStrip(col))
		})
}

// groundStrip is the strip directly under the hitbox, as wide as it.
func groundStrip(col *component.Collider) image.Rectangle {
	h := col.GroundDepth
	if h <= 0 {
		h = 1
	}
	return common.RectAt(col.Hitbox.Min.X, col.Hitbox.Max.Y, col.Hitbox.Dx(), h)
}

func resolveHorizontal(g *ecs.Geometry, t *component.Transform, vel *component.Velocity, col *component.Collider) {
	if vel.Direction.X == 0 {
		return
	}
	for _, r := range g.Overlapping(col.Hitbox) {
		if !r.Overlaps(col.Hitbox) {
			continue
		}
		if vel.Direction.X > 0 {
			col.Hitbox = common.WithRight(col.Hitbox, r.Min.X)
		} else {
			col.Hitbox = common.WithLeft(col.Hitbox, r.Max.X)
		}
		cx := common.CenterX(col.Hitbox)
		t.Rect = common.WithCenterX(t.Rect, cx)
		t.Pos.X = float64(cx)
	}
}

func resolveVertical(g *ecs.Geometry, t *component.Transform, vel *component.Velocity, col *component.Collider) {
	for _, r := range g.Overlapping(col.Hitbox) {
		if !r.Overlaps(col.Hitbox) {
			continue
		}
		if vel.Direction.Y < 0 {
			col.Hitbox = common.WithTop(col.Hitbox, r.Max.Y)
		} else if vel.Direction.Y > 0 {
			col.Hitbox = common.WithBottom(col.Hitbox, r.Min.Y)
		}
		cy := common.CenterY(col.Hitbox)
		t.Rect = common.WithCenterY(t.Rect, cy)
		t.Pos.Y = float64(cy)
		vel.Direction.Y = 0
	}
}
