package system

import (
	"image"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

// floor is a wide slab whose top edge is y=200.
var floor = image.Rect(0, 200, 1280, 264)

func geometry(t *testing.T, rects ...image.Rectangle) *ecs.Geometry {
	t.Helper()
	g, err := ecs.NewGeometry(rects)
	require.NoError(t, err)
	return g
}

func timer(t *testing.T, w *ecs.World, ms int) *common.Timer {
	t.Helper()
	tm, err := common.NewTimer(w.Clock(), time.Duration(ms)*time.Millisecond)
	require.NoError(t, err)
	return tm
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, kind, v))
}

// spawnPlayer places a player whose render rect has its top-left at
// topLeft. The hitbox is 30px wide, 64px tall.
func spawnPlayer(t *testing.T, w *ecs.World, topLeft image.Point) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	rect := common.RectAt(topLeft.X, topLeft.Y, 80, 64)
	c := common.Center(rect)

	anim, err := component.NewAnimation(map[string]int{
		"idle_left": 4, "idle_right": 4,
		"run_left": 6, "run_right": 6,
		"jump_left": 1, "jump_right": 1,
		"fall_left": 1, "fall_right": 1,
	}, "idle_right", common.AnimationSpeed, component.AnimationLoop)
	require.NoError(t, err)

	add(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	add(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		Orientation:   component.OrientRight,
		Status:        component.StatusIdle,
		JumpImpulse:   -2,
		FallThreshold: 1,
		DamageAmount:  30,
		DamageKick:    1.5,
	})
	add(t, w, e, component.InputComponent.Kind(), &component.Input{})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{
		Pos:  cp.Vector{X: float64(c.X), Y: float64(c.Y)},
		Rect: rect,
	})
	add(t, w, e, component.ColliderComponent.Kind(), &component.Collider{
		Hitbox:      common.Inflate(rect, -50, 0),
		GroundDepth: 2,
	})
	add(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{Speed: 300})
	add(t, w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: 4})
	add(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: 200, Max: 1000, BarLength: 400})
	add(t, w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Timer: timer(t, w, 200)})
	add(t, w, e, component.AnimationComponent.Kind(), anim)
	add(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Sheet: "player", Key: anim.Current})
	names := []string{component.SoundJump, component.SoundHit, component.SoundCoin}
	add(t, w, e, component.AudioComponent.Kind(), &component.Audio{Names: names, Play: make([]bool, len(names))})
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func velocityOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Velocity {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	require.True(t, ok)
	return v
}

func colliderOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Collider {
	t.Helper()
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	require.True(t, ok)
	return c
}

func healthOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	return h
}

// recordingSink remembers every sound played.
type recordingSink struct {
	played []string
}

func (r *recordingSink) Play(name string) {
	r.played = append(r.played, name)
}

func playerPipeline(keys KeyState) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(keys),
		NewPlayerControllerSystem(),
		NewGravitySystem(),
		NewBodySystem(),
		NewInvulnerableSystem(),
		NewPlayerStatusSystem(),
		NewAnimationSystem(),
	)
}
