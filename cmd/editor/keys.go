package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/piratemaker/ecs/component"
)

// editorKeys drives the player in play mode. Arrows are taken by selection
// cycling while editing, so play mode accepts both sets.
type editorKeys struct{}

func (editorKeys) IsPressed(key component.Key) bool {
	switch key {
	case component.KeyLeft:
		return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case component.KeyRight:
		return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case component.KeyJump:
		return ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW)
	}
	return false
}
