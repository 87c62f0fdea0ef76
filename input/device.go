package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Device is the physical input the poller samples.
type Device interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
	IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool
	GamepadAxis(axis ebiten.StandardGamepadAxis) float64
}

// EbitenDevice reads keyboard, mouse and the first standard-layout gamepad
// from ebiten.
type EbitenDevice struct {
	gamepads []ebiten.GamepadID
}

func NewEbitenDevice() *EbitenDevice {
	return &EbitenDevice{}
}

func (d *EbitenDevice) gamepad() (ebiten.GamepadID, bool) {
	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	for _, id := range d.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func (d *EbitenDevice) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (d *EbitenDevice) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (d *EbitenDevice) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (d *EbitenDevice) IsGamepadButtonPressed(button ebiten.StandardGamepadButton) bool {
	id, ok := d.gamepad()
	if !ok {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (d *EbitenDevice) GamepadAxis(axis ebiten.StandardGamepadAxis) float64 {
	id, ok := d.gamepad()
	if !ok {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}
