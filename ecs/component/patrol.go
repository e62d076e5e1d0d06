package component

// Patrol walks along a floor, turning at walls and ledges.
type Patrol struct {
	Orientation Orientation
	// Script names the turn rule under prefabs/scripts. Empty uses the
	// stock rule.
	Script string
}

var PatrolComponent = NewComponent[Patrol]()
