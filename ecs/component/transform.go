package component

import (
	"image"

	"github.com/jakecoffman/cp"
)

// Transform pairs the authoritative sub-pixel position with the integer
// rect used for drawing and collision. Rect is always derived from Pos;
// which anchor of Rect Pos refers to depends on the entity (top-left for
// most, center for the player).
type Transform struct {
	Pos  cp.Vector
	Rect image.Rectangle
}

var TransformComponent = NewComponent[Transform]()
