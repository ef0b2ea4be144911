// Package backend binds ebiten input, audio and drawing to the world. It is
// the only ecs package that talks to ebiten.
package backend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
)

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var in component.Input
	in.Left = anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft)
	in.Right = anyPressed(ebiten.KeyD, ebiten.KeyArrowRight)
	in.Up = anyPressed(ebiten.KeyW, ebiten.KeyArrowUp)
	in.Down = anyPressed(ebiten.KeyS, ebiten.KeyArrowDown)
	in.LeftPressed = anyJustPressed(ebiten.KeyA, ebiten.KeyArrowLeft)
	in.RightPressed = anyJustPressed(ebiten.KeyD, ebiten.KeyArrowRight)
	in.UpPressed = anyJustPressed(ebiten.KeyW, ebiten.KeyArrowUp)
	in.DownPressed = anyJustPressed(ebiten.KeyS, ebiten.KeyArrowDown)
	in.Confirm = anyJustPressed(ebiten.KeySpace, ebiten.KeyEnter)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	in.Copy = inpututil.IsKeyJustPressed(ebiten.KeyC)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		pad := func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		padJust := func(b ebiten.StandardGamepadButton) bool {
			return inpututil.IsStandardGamepadButtonJustPressed(id, b)
		}

		in.Left = in.Left || pad(ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || pad(ebiten.StandardGamepadButtonLeftRight)
		in.Up = in.Up || pad(ebiten.StandardGamepadButtonLeftTop)
		in.Down = in.Down || pad(ebiten.StandardGamepadButtonLeftBottom)
		in.LeftPressed = in.LeftPressed || padJust(ebiten.StandardGamepadButtonLeftLeft)
		in.RightPressed = in.RightPressed || padJust(ebiten.StandardGamepadButtonLeftRight)
		in.UpPressed = in.UpPressed || padJust(ebiten.StandardGamepadButtonLeftTop)
		in.DownPressed = in.DownPressed || padJust(ebiten.StandardGamepadButtonLeftBottom)
		in.Confirm = in.Confirm || padJust(ebiten.StandardGamepadButtonRightBottom)
		in.Pause = in.Pause || padJust(ebiten.StandardGamepadButtonCenterRight)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}
