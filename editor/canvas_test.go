package editor

import (
	"image"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanKeepsGrabOffset(t *testing.T) {
	c := NewCanvas(levels.NewGrid(10, 10))
	c.Origin = cp.Vector{X: 100, Y: 50}

	c.BeginPan(cp.Vector{X: 300, Y: 300})
	c.Pan(cp.Vector{X: 350, Y: 280})
	assert.Equal(t, cp.Vector{X: 150, Y: 30}, c.Origin)

	c.EndPan()
	c.Pan(cp.Vector{X: 0, Y: 0})
	assert.Equal(t, cp.Vector{X: 150, Y: 30}, c.Origin)
	assert.False(t, c.Panning())
}

func TestZoomKeepsCursorPointAndClamps(t *testing.T) {
	c := NewCanvas(levels.NewGrid(10, 10))
	mouse := cp.Vector{X: 400, Y: 300}
	before := c.ScreenToWorld(mouse)

	c.ZoomAt(mouse, 3)
	after := c.ScreenToWorld(mouse)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	c.ZoomAt(mouse, 100)
	assert.Equal(t, MaxZoom, c.Zoom)
	c.ZoomAt(mouse, -200)
	assert.Equal(t, MinZoom, c.Zoom)
}

func TestSelectionClamped(t *testing.T) {
	c := NewCanvas(levels.NewGrid(1, 1))
	assert.Equal(t, levels.MinSelection, c.Selection)

	c.CycleSelection(-5)
	assert.Equal(t, 2, c.Selection)
	c.CycleSelection(100)
	assert.Equal(t, 18, c.Selection)
	c.SetSelection(9)
	assert.Equal(t, 9, c.Selection)
}

func TestPaintAndErase(t *testing.T) {
	g := levels.NewGrid(4, 4)
	c := NewCanvas(g)
	c.Origin = cp.Vector{X: 10, Y: 10}
	c.SetSelection(levels.CellTooth)

	require.NoError(t, c.Paint(cp.Vector{X: 10 + 64*2 + 5, Y: 10 + 64 + 5}))
	v, ok := g.At(image.Pt(2, 1))
	require.True(t, ok)
	assert.Equal(t, levels.CellTooth, v)

	// left of the origin is cell -1
	assert.ErrorIs(t, c.Paint(cp.Vector{X: 5, Y: 20}), levels.ErrOutOfBounds)

	require.NoError(t, c.PlacePlayer(cp.Vector{X: 20, Y: 20}))
	p, ok := g.Player()
	require.True(t, ok)
	assert.Equal(t, image.Pt(0, 0), p)

	c.Erase(cp.Vector{X: 10 + 64*2 + 5, Y: 10 + 64 + 5})
	assert.Equal(t, 0, g.Len())
}

func TestGridLinesFollowOrigin(t *testing.T) {
	c := NewCanvas(levels.NewGrid(1, 1))
	c.Origin = cp.Vector{X: -30, Y: 70}

	xs, ys := c.GridLines(200, 200)
	assert.Equal(t, []float64{34, 98, 162}, xs)
	assert.Equal(t, []float64{6, 70, 134, 198}, ys)
}
