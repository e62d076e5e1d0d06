package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/piratemaker/assets"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRejectsBadInput(t *testing.T) {
	s := NewSheets(&assets.Palette{})

	_, err := s.Frame("", "idle", 0, 10, 10)
	assert.Error(t, err)
	_, err = s.Frame("player", "idle", 0, 0, 10)
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestShadeHelpers(t *testing.T) {
	c := color.RGBA{R: 100, G: 0, B: 200, A: 255}

	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, lighten(c, 1))
	assert.Equal(t, c, lighten(c, 0))
	assert.Equal(t, color.RGBA{R: 50, G: 0, B: 100, A: 255}, darken(c, 0.5))
}

func TestLayerOfAndCameraOffset(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	assert.Equal(t, 0, layerOf(w, e))
	require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 4}))
	assert.Equal(t, 4, layerOf(w, e))

	r := &Renderer{Sheets: NewSheets(nil)}
	assert.Zero(t, r.Offset(w))

	cam := ecs.CreateEntity(w)
	camera := &component.Camera{}
	camera.Offset.X, camera.Offset.Y = 12, -7
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), camera))
	off := r.Offset(w)
	assert.Equal(t, 12.0, off.X)
	assert.Equal(t, -7.0, off.Y)
}
