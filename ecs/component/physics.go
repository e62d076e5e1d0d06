package component

import "github.com/jakecoffman/cp"

// Velocity moves an entity by Direction*Speed px per second. For the player
// Direction.Y doubles as the gravity-accumulated vertical velocity.
type Velocity struct {
	Direction cp.Vector
	Speed     float64
}

var VelocityComponent = NewComponent[Velocity]()

// Gravity accelerates Velocity.Direction.Y by Accel units per second.
type Gravity struct {
	Accel float64
}

var GravityComponent = NewComponent[Gravity]()
