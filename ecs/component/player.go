package component

type Orientation string

const (
	OrientLeft  Orientation = "left"
	OrientRight Orientation = "right"
)

// Status is the animation label derived from physics state.
type Status string

const (
	StatusIdle   Status = "idle"
	StatusRun    Status = "run"
	StatusJump   Status = "jump"
	StatusFall   Status = "fall"
	StatusAttack Status = "attack"
)

type Player struct {
	Orientation Orientation
	Status      Status
	// JumpImpulse is the vertical velocity set on jump (negative is up).
	JumpImpulse float64
	// FallThreshold is the vertical velocity above which the player counts
	// as falling rather than standing.
	FallThreshold float64
	DamageAmount  int
	DamageKick    float64
}

var PlayerComponent = NewComponent[Player]()
