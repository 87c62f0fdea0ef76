package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ptest/prefabs"
)

type control struct {
	key         ebiten.Key
	mouseButton ebiten.MouseButton
	padButton   ebiten.StandardGamepadButton
	kind        controlKind
}

type controlKind int

const (
	controlKey controlKind = iota
	controlMouseButton
	controlGamepadButton
)

type mouseAxis int

const (
	mouseX mouseAxis = iota
	mouseY
)

type actionMapping struct {
	name     string
	controls []control
}

type scaledControl struct {
	control control
	scale   float64
}

type mouseSource struct {
	axis  mouseAxis
	scale float64
}

type padSource struct {
	axis     ebiten.StandardGamepadAxis
	scale    float64
	deadzone float64
}

type axisMapping struct {
	name    string
	keys    []scaledControl
	mouse   []mouseSource
	gamepad []padSource
}

// Mappings is a resolved input prefab.
type Mappings struct {
	actions []actionMapping
	axes    []axisMapping
}

var keyNames = func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[strings.ToLower(k.String())] = k
	}
	return names
}()

var mouseButtonNames = map[string]ebiten.MouseButton{
	"left":   ebiten.MouseButtonLeft,
	"right":  ebiten.MouseButtonRight,
	"middle": ebiten.MouseButtonMiddle,
}

var gamepadButtonNames = map[string]ebiten.StandardGamepadButton{
	"rightbottom":      ebiten.StandardGamepadButtonRightBottom,
	"rightright":       ebiten.StandardGamepadButtonRightRight,
	"rightleft":        ebiten.StandardGamepadButtonRightLeft,
	"righttop":         ebiten.StandardGamepadButtonRightTop,
	"fronttopleft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"fronttopright":    ebiten.StandardGamepadButtonFrontTopRight,
	"frontbottomleft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"frontbottomright": ebiten.StandardGamepadButtonFrontBottomRight,
	"centerleft":       ebiten.StandardGamepadButtonCenterLeft,
	"centerright":      ebiten.StandardGamepadButtonCenterRight,
	"leftstick":        ebiten.StandardGamepadButtonLeftStick,
	"rightstick":       ebiten.StandardGamepadButtonRightStick,
	"lefttop":          ebiten.StandardGamepadButtonLeftTop,
	"leftbottom":       ebiten.StandardGamepadButtonLeftBottom,
	"leftleft":         ebiten.StandardGamepadButtonLeftLeft,
	"leftright":        ebiten.StandardGamepadButtonLeftRight,
	"centercenter":     ebiten.StandardGamepadButtonCenterCenter,
}

var gamepadAxisNames = map[string]ebiten.StandardGamepadAxis{
	"leftstickhorizontal":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"leftstickvertical":    ebiten.StandardGamepadAxisLeftStickVertical,
	"rightstickhorizontal": ebiten.StandardGamepadAxisRightStickHorizontal,
	"rightstickvertical":   ebiten.StandardGamepadAxisRightStickVertical,
}

func parseKey(name string) (control, error) {
	key, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return control{}, fmt.Errorf("input: unknown key %q", name)
	}
	return control{kind: controlKey, key: key}, nil
}

// parseButton accepts a key, mouse button ("mouse:left") or gamepad button
// ("pad:RightBottom") for axis key entries.
func parseButton(name string) (control, error) {
	if after, ok := strings.CutPrefix(name, "mouse:"); ok {
		b, ok := mouseButtonNames[strings.ToLower(after)]
		if !ok {
			return control{}, fmt.Errorf("input: unknown mouse button %q", after)
		}
		return control{kind: controlMouseButton, mouseButton: b}, nil
	}
	if after, ok := strings.CutPrefix(name, "pad:"); ok {
		b, ok := gamepadButtonNames[strings.ToLower(after)]
		if !ok {
			return control{}, fmt.Errorf("input: unknown gamepad button %q", after)
		}
		return control{kind: controlGamepadButton, padButton: b}, nil
	}
	return parseKey(name)
}

// NewMappings resolves control names in spec.
func NewMappings(spec *prefabs.InputSpec) (*Mappings, error) {
	m := &Mappings{}
	if spec == nil {
		return m, nil
	}

	for _, a := range spec.Actions {
		if a.Name == "" {
			return nil, fmt.Errorf("input: action mapping without a name")
		}
		am := actionMapping{name: a.Name}
		for _, k := range a.Keys {
			c, err := parseKey(k)
			if err != nil {
				return nil, fmt.Errorf("input: action %s: %w", a.Name, err)
			}
			am.controls = append(am.controls, c)
		}
		for _, b := range a.MouseButtons {
			mb, ok := mouseButtonNames[strings.ToLower(b)]
			if !ok {
				return nil, fmt.Errorf("input: action %s: unknown mouse button %q", a.Name, b)
			}
			am.controls = append(am.controls, control{kind: controlMouseButton, mouseButton: mb})
		}
		for _, b := range a.GamepadButtons {
			pb, ok := gamepadButtonNames[strings.ToLower(b)]
			if !ok {
				return nil, fmt.Errorf("input: action %s: unknown gamepad button %q", a.Name, b)
			}
			am.controls = append(am.controls, control{kind: controlGamepadButton, padButton: pb})
		}
		m.actions = append(m.actions, am)
	}

	for _, a := range spec.Axes {
		if a.Name == "" {
			return nil, fmt.Errorf("input: axis mapping without a name")
		}
		xm := axisMapping{name: a.Name}
		for _, k := range a.Keys {
			c, err := parseButton(k.Key)
			if err != nil {
				return nil, fmt.Errorf("input: axis %s: %w", a.Name, err)
			}
			xm.keys = append(xm.keys, scaledControl{control: c, scale: k.Scale})
		}
		for _, s := range a.Mouse {
			var axis mouseAxis
			switch strings.ToLower(s.Axis) {
			case "x":
				axis = mouseX
			case "y":
				axis = mouseY
			default:
				return nil, fmt.Errorf("input: axis %s: unknown mouse axis %q", a.Name, s.Axis)
			}
			xm.mouse = append(xm.mouse, mouseSource{axis: axis, scale: s.Scale})
		}
		for _, s := range a.Gamepad {
			pa, ok := gamepadAxisNames[strings.ToLower(s.Axis)]
			if !ok {
				return nil, fmt.Errorf("input: axis %s: unknown gamepad axis %q", a.Name, s.Axis)
			}
			xm.gamepad = append(xm.gamepad, padSource{axis: pa, scale: s.Scale, deadzone: s.Deadzone})
		}
		m.axes = append(m.axes, xm)
	}

	return m, nil
}

func (c control) down(d Device) bool {
	switch c.kind {
	case controlKey:
		return d.IsKeyPressed(c.key)
	case controlMouseButton:
		return d.IsMouseButtonPressed(c.mouseButton)
	case controlGamepadButton:
		return d.IsGamepadButtonPressed(c.padButton)
	}
	return false
}
