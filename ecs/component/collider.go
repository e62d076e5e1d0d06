package component

import "image"

// Collider is the player's collision box, decoupled from the render rect
// and resolved against static geometry one axis at a time.
type Collider struct {
	Hitbox   image.Rectangle
	Grounded bool
	// GroundDepth is the thickness of the strip under the hitbox used for
	// the grounded check.
	GroundDepth int
}

var ColliderComponent = NewComponent[Collider]()
