package component

type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
)

// Input stores per-frame held-key state for an entity.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

var InputComponent = NewComponent[Input]()
