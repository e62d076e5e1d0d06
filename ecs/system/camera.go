package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/piratemaker/common"
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

type CameraSystem struct {
	screenW, screenH float64
}

func NewCameraSystem(screenW, screenH int) *CameraSystem {
	return &CameraSystem{screenW: float64(screenW), screenH: float64(screenH)}
}

func (c *CameraSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	target, ok := playerCenter(w)
	if !ok {
		return
	}
	want := target.Sub(cp.Vector{X: c.screenW / 2, Y: c.screenH / 2})

	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		if cam.Smoothness <= 0 || cam.Smoothness >= 1 {
			cam.Offset = want
			return
		}
		cam.Offset = cam.Offset.Lerp(want, common.Clamp(cam.Smoothness, 0, 1))
	})
}
