package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Cloud marks background clouds so the spawner can count live ones.
type Cloud struct{}

var CloudComponent = NewComponent[Cloud]()
