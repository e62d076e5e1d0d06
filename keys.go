package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/piratemaker/ecs/component"
)

// ebitenKeys reads the keyboard. Both WASD and the arrows work, and space
// also jumps.
type ebitenKeys struct{}

func (ebitenKeys) IsPressed(key component.Key) bool {
	switch key {
	case component.KeyLeft:
		return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case component.KeyRight:
		return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case component.KeyJump:
		return ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeySpace)
	}
	return false
}
