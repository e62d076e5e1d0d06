package component

import "github.com/milk9111/piratemaker/common"

// Lifetime destroys its entity once Timer runs out.
type Lifetime struct {
	Timer *common.Timer
}

var LifetimeComponent = NewComponent[Lifetime]()

// LeftLimit destroys its entity once the rect's left edge reaches X.
type LeftLimit struct {
	X int
}

var LeftLimitComponent = NewComponent[LeftLimit]()
