package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/ecs/component"
)

// PlayerStatus classifies a velocity: rising is a jump, falling faster than
// fallThreshold is a fall, otherwise horizontal intent decides run or idle.
func PlayerStatus(dir cp.Vector, fallThreshold float64) component.Status {
	switch {
	case dir.Y < 0:
		return component.StatusJump
	case dir.Y > fallThreshold:
		return component.StatusFall
	case dir.X != 0:
		return component.StatusRun
	default:
		return component.StatusIdle
	}
}
