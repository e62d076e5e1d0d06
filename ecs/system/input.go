package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// KeyState reports which keys are held this frame.
type KeyState interface {
	IsPressed(key component.Key) bool
}

// KeySet is a fixed KeyState, handy for scripted input.
type KeySet map[component.Key]bool

func (k KeySet) IsPressed(key component.Key) bool {
	return k[key]
}

type InputSystem struct {
	keys KeyState
}

func NewInputSystem(keys KeyState) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) SetKeys(keys KeyState) {
	i.keys = keys
}

func (i *InputSystem) Update(w *ecs.World, _ ecs.Frame) {
	if w == nil {
		return
	}

	var left, right, jump bool
	if i.keys != nil {
		left = i.keys.IsPressed(component.KeyLeft)
		right = i.keys.IsPressed(component.KeyRight)
		jump = i.keys.IsPressed(component.KeyJump)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Jump = jump
	})
}
