package component

import "github.com/milk9111/piratemaker/common"

// Invulnerable holds the post-hit immunity window. The entity is immune
// while Timer is active.
type Invulnerable struct {
	Timer *common.Timer
}

func (i *Invulnerable) Active() bool {
	return i != nil && i.Timer.Active()
}

var InvulnerableComponent = NewComponent[Invulnerable]()
