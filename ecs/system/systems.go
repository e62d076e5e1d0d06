package system

import (
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
)

// Factories spawn the entities systems create mid-game.
type Factories struct {
	Projectile ProjectileFactory
	Effect     EffectFactory
	Cloud      CloudFactory
}

// NewGameplaySystems returns the full tick pipeline in order. The player
// runs input, force integration, movement with collision, timers, status
// and then animation; shooters decide status before animation and fire
// after it. Enemy scripts come from brains, which may be nil.
func NewGameplaySystems(keys KeyState, sink SoundPlayer, f Factories, brains *Brains) []ecs.System {
	if brains == nil {
		brains = NewBrains()
	}
	return []ecs.System{
		NewInputSystem(keys),
		NewPlayerControllerSystem(),
		NewGravitySystem(),
		NewBodySystem(),
		NewInvulnerableSystem(),
		NewPatrolSystem(brains),
		NewMoverSystem(),
		NewHazardSystem(),
		NewPickupSystem(f.Effect),
		NewPlayerStatusSystem(),
		NewShooterStatusSystem(brains),
		NewAnimationSystem(),
		NewShooterFireSystem(f.Projectile),
		NewLifetimeSystem(),
		NewCloudSpawnerSystem(f.Cloud),
		NewCameraSystem(common.WindowWidth, common.WindowHeight),
		NewAudioSystem(sink),
	}
}
