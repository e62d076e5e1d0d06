package ecs

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometryRejectsEmptyRect(t *testing.T) {
	_, err := NewGeometry([]image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(5, 5, 5, 20)})
	assert.ErrorIs(t, err, ErrEmptyRect)
}

func TestGeometryOverlapIsStrict(t *testing.T) {
	g, err := NewGeometry([]image.Rectangle{
		image.Rect(0, 100, 200, 164),
		image.Rect(200, 0, 264, 164),
	})
	require.NoError(t, err)

	touching := image.Rect(50, 36, 80, 100)
	assert.False(t, g.AnyOverlap(touching), "touching edges do not overlap")

	sunk := image.Rect(50, 37, 80, 101)
	assert.Equal(t, []image.Rectangle{image.Rect(0, 100, 200, 164)}, g.Overlapping(sunk))

	both := image.Rect(190, 90, 210, 110)
	assert.Len(t, g.Overlapping(both), 2)
	assert.Equal(t, image.Rect(0, 100, 200, 164), g.Overlapping(both)[0], "insertion order kept")
}

func TestGeometryContainsPointExclusiveMax(t *testing.T) {
	g, err := NewGeometry([]image.Rectangle{image.Rect(0, 0, 64, 64)})
	require.NoError(t, err)

	assert.True(t, g.ContainsPoint(image.Pt(0, 0)))
	assert.True(t, g.ContainsPoint(image.Pt(63, 63)))
	assert.False(t, g.ContainsPoint(image.Pt(64, 10)))
	assert.False(t, g.ContainsPoint(image.Pt(10, 64)))
	assert.False(t, g.ContainsPoint(image.Pt(-1, 10)))
}

func TestGeometryFromGridMergesTiles(t *testing.T) {
	rows := []string{
		"....",
		"XXX.",
		"XXX.",
		"...X",
	}
	solid := func(x, y int) bool { return rows[y][x] == 'X' }
	g, err := NewGeometryFromGrid(4, 4, 64, solid)
	require.NoError(t, err)

	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 64, 192, 192),
		image.Rect(192, 192, 256, 256),
	}, g.Rects())
	assert.True(t, g.ContainsPoint(image.Pt(100, 100)))
	assert.False(t, g.ContainsPoint(image.Pt(220, 100)))
}

func TestNilGeometryIsEmpty(t *testing.T) {
	var g *Geometry
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.AnyOverlap(image.Rect(0, 0, 10, 10)))
	assert.False(t, g.ContainsPoint(image.Pt(1, 1)))
}
