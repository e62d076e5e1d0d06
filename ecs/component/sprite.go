package component

// Sprite names what to draw: a sheet, a sequence within it and a frame.
// The renderer resolves these to images.
type Sprite struct {
	Sheet string
	Key   string
	Frame int
	FlipX bool
	// Silhouette draws only the opaque-pixel mask in a flat colour.
	Silhouette bool
}

var SpriteComponent = NewComponent[Sprite]()
