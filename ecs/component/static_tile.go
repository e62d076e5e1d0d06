package component

// StaticTile marks a level tile that never moves, e.g. terrain or water.
type StaticTile struct {
	Cell int
}

var StaticTileComponent = NewComponent[StaticTile]()
