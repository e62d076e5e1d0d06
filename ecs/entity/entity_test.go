package entity

import (
	"image"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/milk9111/piratemaker/ecs/system"
	"github.com/milk9111/piratemaker/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, rects ...image.Rectangle) *Context {
	t.Helper()
	cat, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	g, err := ecs.NewGeometry(rects)
	require.NoError(t, err)
	return &Context{
		World:    ecs.NewWorld(),
		Catalog:  cat,
		Geometry: g,
		Rand:     rand.New(rand.NewSource(1)),
	}
}

var ground = image.Rect(0, 128, 640, 192)

func TestNewPlayerHitboxAndPosition(t *testing.T) {
	ctx := newContext(t, ground)
	e, err := NewPlayer(ctx, image.Pt(64, 64))
	require.NoError(t, err)

	tr, _ := ecs.Get(ctx.World, e, component.TransformComponent.Kind())
	col, _ := ecs.Get(ctx.World, e, component.ColliderComponent.Kind())
	health, _ := ecs.Get(ctx.World, e, component.HealthComponent.Kind())

	assert.Equal(t, image.Pt(64, 64), tr.Rect.Min)
	assert.Equal(t, cp.Vector{X: float64(common.CenterX(tr.Rect)), Y: float64(common.CenterY(tr.Rect))}, tr.Pos)
	assert.Equal(t, tr.Rect.Dx()-50, col.Hitbox.Dx())
	assert.Equal(t, tr.Rect.Dy(), col.Hitbox.Dy())
	assert.Equal(t, common.Center(tr.Rect), common.Center(col.Hitbox))
	assert.Equal(t, 200, health.Current)
	assert.Equal(t, 80.0, health.BarWidth())
}

func TestToothWithoutFloorIsRemovedAfterOnePass(t *testing.T) {
	ctx := newContext(t, ground)
	_, err := NewTooth(ctx, image.Pt(64, 256))
	require.NoError(t, err)

	ecs.NewScheduler(system.NewPatrolSystem(nil), system.NewMoverSystem()).Update(ctx.World, ecs.Frame{DT: 1.0 / 60, Geometry: ctx.Geometry})

	assert.Empty(t, ctx.World.Query(component.PatrolComponent.Kind()))
	assert.Empty(t, ecs.Entities(ctx.World))
}

func TestToothOnFloorSurvives(t *testing.T) {
	ctx := newContext(t, ground)
	e, err := NewTooth(ctx, image.Pt(128, 64))
	require.NoError(t, err)

	ecs.NewScheduler(system.NewPatrolSystem(nil), system.NewMoverSystem()).Update(ctx.World, ecs.Frame{DT: 1.0 / 60, Geometry: ctx.Geometry})

	assert.True(t, ctx.World.IsAlive(e))
	tr, _ := ecs.Get(ctx.World, e, component.TransformComponent.Kind())
	assert.Equal(t, common.TileSize, tr.Rect.Dy())
	assert.True(t, ecs.Has(ctx.World, e, component.HazardComponent.Kind()))
}

func TestShellFacing(t *testing.T) {
	ctx := newContext(t, ground)
	right, err := NewShell(ctx, image.Pt(0, 64), component.OrientRight)
	require.NoError(t, err)
	left, err := NewShell(ctx, image.Pt(64, 64), component.OrientLeft)
	require.NoError(t, err)

	rs, _ := ecs.Get(ctx.World, right, component.SpriteComponent.Kind())
	ls, _ := ecs.Get(ctx.World, left, component.SpriteComponent.Kind())
	assert.True(t, rs.FlipX)
	assert.False(t, ls.FlipX)

	_, err = NewShell(ctx, image.Pt(0, 0), component.Orientation("up"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPearlLifetimeActive(t *testing.T) {
	ctx := newContext(t)
	e, err := NewPearl(ctx, cp.Vector{X: 10, Y: 20}, cp.Vector{X: -1})
	require.NoError(t, err)

	life, ok := ecs.Get(ctx.World, e, component.LifetimeComponent.Kind())
	require.True(t, ok)
	assert.True(t, life.Timer.Active())
	tr, _ := ecs.Get(ctx.World, e, component.TransformComponent.Kind())
	assert.Equal(t, image.Pt(10, 20), tr.Rect.Min)
}

func TestCoinKinds(t *testing.T) {
	ctx := newContext(t)
	for kind, value := range map[string]int{CoinGold: 50, CoinSilver: 10, CoinDiamond: 100} {
		e, err := NewCoin(ctx, kind, image.Pt(96, 96))
		require.NoError(t, err)
		coin, _ := ecs.Get(ctx.World, e, component.CoinComponent.Kind())
		assert.Equal(t, value, coin.Value)
		tr, _ := ecs.Get(ctx.World, e, component.TransformComponent.Kind())
		assert.Equal(t, image.Pt(96, 96), common.Center(tr.Rect))
	}

	_, err := NewCoin(ctx, "ruby", image.Pt(0, 0))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParticleIsOneShot(t *testing.T) {
	ctx := newContext(t)
	e, err := NewParticle(ctx, image.Pt(50, 50))
	require.NoError(t, err)

	s := ecs.NewScheduler(system.NewAnimationSystem())
	for i := 0; i < 120 && ctx.World.IsAlive(e); i++ {
		s.Update(ctx.World, ecs.Frame{DT: 1.0 / 60})
	}
	assert.False(t, ctx.World.IsAlive(e))
}

func TestCloudSpawnerSeedsBand(t *testing.T) {
	ctx := newContext(t)
	band := image.Rect(0, -300, 2000, 0)
	_, err := NewCloudSpawner(ctx, band, 99)
	require.NoError(t, err)

	clouds := ctx.World.Query(component.CloudComponent.Kind())
	require.Len(t, clouds, ctx.Catalog.Clouds.StartCount)
	for _, e := range clouds {
		tr, _ := ecs.Get(ctx.World, e, component.TransformComponent.Kind())
		vel, _ := ecs.Get(ctx.World, e, component.VelocityComponent.Kind())
		assert.GreaterOrEqual(t, tr.Rect.Min.Y, band.Min.Y)
		assert.LessOrEqual(t, tr.Rect.Min.Y, band.Max.Y)
		assert.GreaterOrEqual(t, vel.Speed, 20.0)
		assert.LessOrEqual(t, vel.Speed, 30.0)
	}
}

func TestDecorations(t *testing.T) {
	ctx := newContext(t)
	e, err := NewDecoration(ctx, DecorationPalmBG, image.Pt(64, 64))
	require.NoError(t, err)
	layer, _ := ecs.Get(ctx.World, e, component.RenderLayerComponent.Kind())
	assert.Equal(t, common.LayerBG, layer.Index)

	_, err = NewDecoration(ctx, "kraken", image.Pt(0, 0))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestApplyPlayerTuning(t *testing.T) {
	ctx := newContext(t, ground)
	e, err := NewPlayer(ctx, image.Pt(64, 64))
	require.NoError(t, err)

	spec := ctx.Catalog.Player
	spec.Speed = 450
	spec.Gravity = 6
	ApplyPlayerTuning(ctx.World, e, spec)

	vel, _ := ecs.Get(ctx.World, e, component.VelocityComponent.Kind())
	grav, _ := ecs.Get(ctx.World, e, component.GravityComponent.Kind())
	assert.Equal(t, 450.0, vel.Speed)
	assert.Equal(t, 6.0, grav.Accel)
}
