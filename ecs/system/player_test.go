package system

import (
	"image"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerIdleOnGroundKeepsX(t *testing.T) {
	for _, dt := range []float64{0, tick, 0.1, 0.5, 2} {
		w := ecs.NewWorld()
		e := spawnPlayer(t, w, image.Pt(100, 136))
		colliderOf(t, w, e).Grounded = true
		before := transformOf(t, w, e).Pos.X

		playerPipeline(KeySet{}).Update(w, ecs.Frame{DT: dt, Geometry: geometry(t, floor)})

		assert.Equal(t, before, transformOf(t, w, e).Pos.X, "dt=%v", dt)
	}
}

func TestPlayerLandingZeroesVerticalVelocity(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 130))
	velocityOf(t, w, e).Direction.Y = 2

	playerPipeline(KeySet{}).Update(w, ecs.Frame{DT: tick, Geometry: geometry(t, floor)})

	col := colliderOf(t, w, e)
	assert.Equal(t, 0.0, velocityOf(t, w, e).Direction.Y)
	assert.Equal(t, floor.Min.Y, col.Hitbox.Max.Y)
	assert.Equal(t, float64(common.CenterY(col.Hitbox)), transformOf(t, w, e).Pos.Y)
	assert.Equal(t, common.CenterY(col.Hitbox), common.CenterY(transformOf(t, w, e).Rect))
	assert.True(t, col.Grounded)
}

func TestPlayerHeadBumpZeroesVerticalVelocity(t *testing.T) {
	ceiling := image.Rect(0, 0, 1280, 100)
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 104))
	velocityOf(t, w, e).Direction.Y = -2

	playerPipeline(KeySet{}).Update(w, ecs.Frame{DT: tick, Geometry: geometry(t, ceiling, floor)})

	assert.Equal(t, 0.0, velocityOf(t, w, e).Direction.Y)
	assert.Equal(t, ceiling.Max.Y, colliderOf(t, w, e).Hitbox.Min.Y)
}

func TestPlayerRestingNeverAccumulatesFallSpeed(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 136))
	s := playerPipeline(KeySet{})
	g := geometry(t, floor)

	for i := 0; i < 600; i++ {
		s.Update(w, ecs.Frame{DT: tick, Geometry: g})
		require.LessOrEqual(t, velocityOf(t, w, e).Direction.Y, 1.0)
		require.True(t, colliderOf(t, w, e).Grounded)
	}
	assert.Equal(t, floor.Min.Y, colliderOf(t, w, e).Hitbox.Max.Y)
}

func TestPlayerStopsAtWall(t *testing.T) {
	wall := image.Rect(200, 0, 264, 200)
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 136))
	s := playerPipeline(KeySet{component.KeyRight: true})
	g := geometry(t, floor, wall)

	for i := 0; i < 30; i++ {
		s.Update(w, ecs.Frame{DT: tick, Geometry: g})
	}

	col := colliderOf(t, w, e)
	tr := transformOf(t, w, e)
	assert.Equal(t, wall.Min.X, col.Hitbox.Max.X)
	assert.Equal(t, float64(common.CenterX(col.Hitbox)), tr.Pos.X)
	assert.Equal(t, common.CenterX(col.Hitbox), common.CenterX(tr.Rect))

	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	assert.Equal(t, component.OrientRight, player.Orientation)
	assert.Equal(t, component.StatusRun, player.Status)
}

func TestPlayerJumpRequiresGround(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 136))
	s := playerPipeline(KeySet{component.KeyJump: true})
	g := geometry(t, floor)

	// Not grounded yet: no jump.
	colliderOf(t, w, e).Grounded = false
	velocityOf(t, w, e).Direction.Y = 0
	NewPlayerControllerSystem().Update(w, ecs.Frame{DT: tick, Geometry: g})
	assert.Equal(t, 0.0, velocityOf(t, w, e).Direction.Y)

	colliderOf(t, w, e).Grounded = true
	s.Update(w, ecs.Frame{DT: tick, Geometry: g})

	assert.Less(t, velocityOf(t, w, e).Direction.Y, 0.0)
	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	assert.Equal(t, component.StatusJump, player.Status)

	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	assert.True(t, audio.Play[0])
}

func TestPlayerLeftInputFacesLeft(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(400, 136))
	s := playerPipeline(KeySet{component.KeyLeft: true})
	g := geometry(t, floor)

	before := transformOf(t, w, e).Pos.X
	s.Update(w, ecs.Frame{DT: 0.1, Geometry: g})

	assert.InDelta(t, before-30, transformOf(t, w, e).Pos.X, 1e-9)
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	assert.Equal(t, "run_left", anim.Current)
}

func TestPlayerStatus(t *testing.T) {
	tests := []struct {
		name string
		dir  cp.Vector
		want component.Status
	}{
		{"rising", cp.Vector{X: 1, Y: -0.1}, component.StatusJump},
		{"falling", cp.Vector{Y: 1.01}, component.StatusFall},
		{"settling is not falling", cp.Vector{Y: 1}, component.StatusIdle},
		{"running", cp.Vector{X: -1, Y: 0.5}, component.StatusRun},
		{"idle", cp.Vector{}, component.StatusIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlayerStatus(tt.dir, 1))
		})
	}
}

func TestDamageIgnoredWhileInvulnerable(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 136))

	assert.True(t, DamagePlayer(w, e))
	assert.False(t, DamagePlayer(w, e))

	assert.Equal(t, 170, healthOf(t, w, e).Current)
	assert.Equal(t, -1.5, velocityOf(t, w, e).Direction.Y)

	// Let the 200ms window run out.
	s := ecs.NewScheduler(NewInvulnerableSystem())
	for i := 0; i < 13; i++ {
		s.Update(w, ecs.Frame{DT: tick})
	}
	assert.True(t, DamagePlayer(w, e))
	assert.Equal(t, 140, healthOf(t, w, e).Current)

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPlayerHit, events[0].Type)
}

func TestHealthStaysInRange(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 136))
	inv, _ := ecs.Get(w, e, component.InvulnerableComponent.Kind())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		if rng.Intn(2) == 0 {
			inv.Timer.Deactivate()
			DamagePlayer(w, e)
		} else {
			HealPlayer(w, e, rng.Intn(400))
		}
		h := healthOf(t, w, e)
		require.GreaterOrEqual(t, h.Current, 0)
		require.LessOrEqual(t, h.Current, h.Max)
	}
}

func TestSilhouetteWhileInvulnerable(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnPlayer(t, w, image.Pt(100, 136))
	DamagePlayer(w, e)

	NewPlayerStatusSystem().Update(w, ecs.Frame{DT: tick})

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	assert.True(t, sprite.Silhouette)
}

func TestHazardHitsOnceAndSurvives(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, image.Pt(100, 136))

	spike := ecs.CreateEntity(w)
	add(t, w, spike, component.HazardComponent.Kind(), &component.Hazard{})
	add(t, w, spike, component.TransformComponent.Kind(), &component.Transform{Rect: common.RectAt(120, 174, 64, 26)})

	s := ecs.NewScheduler(NewHazardSystem())
	s.Update(w, ecs.Frame{DT: tick})
	s.Update(w, ecs.Frame{DT: tick})

	assert.Equal(t, 170, healthOf(t, w, p).Current)
	assert.True(t, w.IsAlive(spike))
}

func TestPickupHealsAndSpawnsEffect(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, image.Pt(100, 136))

	coin := ecs.CreateEntity(w)
	coinRect := common.RectAt(130, 160, 20, 20)
	add(t, w, coin, component.CoinComponent.Kind(), &component.Coin{Kind: "gold", Value: 50})
	add(t, w, coin, component.TransformComponent.Kind(), &component.Transform{Rect: coinRect})

	var effects []image.Point
	effect := func(w *ecs.World, at image.Point) (ecs.Entity, error) {
		effects = append(effects, at)
		return ecs.CreateEntity(w), nil
	}
	s := ecs.NewScheduler(NewPickupSystem(effect))
	s.Update(w, ecs.Frame{DT: tick})

	assert.Equal(t, 250, healthOf(t, w, p).Current)
	assert.False(t, w.IsAlive(coin))
	assert.Equal(t, []image.Point{common.Center(coinRect)}, effects)

	audio, _ := ecs.Get(w, p, component.AudioComponent.Kind())
	assert.True(t, audio.Play[2])
}

func TestAudioSystemDrainsRequests(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, image.Pt(100, 136))
	audio, _ := ecs.Get(w, p, component.AudioComponent.Kind())
	audio.Request(component.SoundJump)
	audio.Request("unknown")

	sink := &recordingSink{}
	NewAudioSystem(sink).Update(w, ecs.Frame{})
	NewAudioSystem(sink).Update(w, ecs.Frame{})

	assert.Equal(t, []string{component.SoundJump}, sink.played)
	assert.False(t, audio.Play[0])
}
