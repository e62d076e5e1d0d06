package component

// Hazard marks an entity as dangerous on overlap with the player's hitbox.
// Hazards are not consumed by a hit.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
