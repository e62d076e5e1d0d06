package component

import "github.com/jakecoffman/cp"

// Camera keeps the player centred on screen. Offset is the world-to-screen
// translation the renderer subtracts this frame. Smoothness in (0, 1] eases
// toward the target; 0 snaps.
type Camera struct {
	Offset     cp.Vector
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
