package editor

import (
	"image"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/levels"
)

const (
	MinZoom    = 0.25
	MaxZoom    = 8.0
	zoomFactor = 1.1
)

// Canvas is the editor's view onto a level grid: where the grid origin sits
// on screen, how far it is zoomed and which tile type is selected.
type Canvas struct {
	Origin    cp.Vector
	Zoom      float64
	Selection int
	Grid      *levels.Grid
	// MaxUndo caps the undo history. Zero means 100.
	MaxUndo int

	panActive bool
	panOffset cp.Vector
	undo      []*levels.Grid
	playing   bool
}

func NewCanvas(grid *levels.Grid) *Canvas {
	return &Canvas{Zoom: 1, Selection: levels.MinSelection, Grid: grid}
}

// BeginPan anchors a middle-button drag at mouse.
func (c *Canvas) BeginPan(mouse cp.Vector) {
	c.panActive = true
	c.panOffset = mouse.Sub(c.Origin)
}

// Pan keeps the grabbed point under the cursor while a drag is active.
func (c *Canvas) Pan(mouse cp.Vector) {
	if !c.panActive {
		return
	}
	c.Origin = mouse.Sub(c.panOffset)
}

func (c *Canvas) EndPan() {
	c.panActive = false
}

func (c *Canvas) Panning() bool {
	return c.panActive
}

// ZoomAt scales by one wheel notch per unit of wheel, clamped to
// [MinZoom, MaxZoom], keeping the world point under mouse fixed.
func (c *Canvas) ZoomAt(mouse cp.Vector, wheel float64) {
	if wheel == 0 {
		return
	}
	before := c.ScreenToWorld(mouse)
	c.Zoom = common.Clamp(c.zoom()*math.Pow(zoomFactor, wheel), MinZoom, MaxZoom)
	c.Origin = mouse.Sub(before.Mult(c.Zoom))
}

func (c *Canvas) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

func (c *Canvas) ScreenToWorld(p cp.Vector) cp.Vector {
	return p.Sub(c.Origin).Mult(1 / c.zoom())
}

func (c *Canvas) WorldToScreen(p cp.Vector) cp.Vector {
	return p.Mult(c.zoom()).Add(c.Origin)
}

// CellAt returns the grid cell under a screen point.
func (c *Canvas) CellAt(mouse cp.Vector) image.Point {
	p := c.ScreenToWorld(mouse)
	return image.Pt(
		int(math.Floor(p.X/common.TileSize)),
		int(math.Floor(p.Y/common.TileSize)),
	)
}

// CycleSelection steps the selected tile type, stopping at either end.
func (c *Canvas) CycleSelection(delta int) {
	c.SetSelection(c.Selection + delta)
}

func (c *Canvas) SetSelection(i int) {
	c.Selection = common.ClampInt(i, levels.MinSelection, levels.MaxSelection)
}

// Paint writes the selection into the cell under mouse.
func (c *Canvas) Paint(mouse cp.Vector) error {
	return c.Grid.Set(c.CellAt(mouse), c.Selection)
}

// PlacePlayer moves the player start to the cell under mouse.
func (c *Canvas) PlacePlayer(mouse cp.Vector) error {
	return c.Grid.Set(c.CellAt(mouse), levels.CellPlayer)
}

func (c *Canvas) Erase(mouse cp.Vector) {
	c.Grid.Clear(c.CellAt(mouse))
}

// GridLines returns the screen positions of the visible vertical and
// horizontal grid lines for a screen of the given size. Lines are anchored
// to the origin so they move with panning.
func (c *Canvas) GridLines(screenW, screenH int) (xs, ys []float64) {
	step := common.TileSize * c.zoom()
	xs = lines(c.Origin.X, step, float64(screenW))
	ys = lines(c.Origin.Y, step, float64(screenH))
	return xs, ys
}

func lines(origin, step, extent float64) []float64 {
	first := math.Mod(origin, step)
	if first < 0 {
		first += step
	}
	var out []float64
	for v := first; v <= extent; v += step {
		out = append(out, v)
	}
	return out
}
