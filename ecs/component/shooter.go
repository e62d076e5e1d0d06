package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
)

// Shooter is a stationary enemy that fires one projectile per attack
// cycle when a target is in range and its cooldown has elapsed.
type Shooter struct {
	Facing   Orientation
	Status   Status
	HasShot  bool
	Cooldown *common.Timer
	Range    float64
	// ShotFrame is the attack frame on which the projectile leaves.
	ShotFrame int
	// Offsets from the shooter's rect center to the projectile's top-left.
	OffsetLeft  cp.Vector
	OffsetRight cp.Vector
	// Script names the attack rule under prefabs/scripts.
	Script string
}

var ShooterComponent = NewComponent[Shooter]()
