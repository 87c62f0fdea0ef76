package gamemode

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/ptest/prefabs"
)

// Appearance is what a blueprint chooses for the pawn's visuals.
type Appearance struct {
	Mesh      string
	AnimClass string
}

// RunBlueprint executes a blueprint script against a props map seeded from
// spec. Tuning the script writes back into spec.
func RunBlueprint(name string, src []byte, spec *prefabs.CharacterSpec, look *Appearance) error {
	script := tengo.NewScript(src)
	if err := script.Add("props", propsFromSpec(spec, look)); err != nil {
		return fmt.Errorf("gamemode: blueprint %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("gamemode: blueprint %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("gamemode: blueprint %s: %w", name, err)
	}

	props := compiled.Get("props").Map()
	if props == nil {
		return fmt.Errorf("gamemode: blueprint %s: props is no longer a map", name)
	}
	if err := applyProps(props, spec, look); err != nil {
		return fmt.Errorf("gamemode: blueprint %s: %w", name, err)
	}
	return nil
}

func propsFromSpec(spec *prefabs.CharacterSpec, look *Appearance) map[string]any {
	return map[string]any{
		"mesh":              look.Mesh,
		"anim_class":        look.AnimClass,
		"walk_speed":        spec.Control.WalkSpeed,
		"run_speed":         spec.Control.RunSpeed,
		"base_turn_rate":    spec.Control.BaseTurnRate,
		"base_look_rate":    spec.Control.BaseLookRate,
		"jump_z_velocity":   spec.Movement.JumpZVelocity,
		"air_control":       spec.Movement.AirControl,
		"rotation_rate_yaw": spec.Movement.RotationRateYaw,
		"target_arm_length": spec.CameraBoom.TargetArmLength,
	}
}

func applyProps(props map[string]any, spec *prefabs.CharacterSpec, look *Appearance) error {
	str := func(key string, dst *string) error {
		v, ok := props[key]
		if !ok || v == nil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("props.%s: want string, got %T", key, v)
		}
		*dst = s
		return nil
	}
	num := func(key string, dst *float64) error {
		v, ok := props[key]
		if !ok || v == nil {
			return nil
		}
		switch n := v.(type) {
		case int64:
			*dst = float64(n)
		case float64:
			*dst = n
		default:
			return fmt.Errorf("props.%s: want number, got %T", key, v)
		}
		return nil
	}

	fields := []error{
		str("mesh", &look.Mesh),
		str("anim_class", &look.AnimClass),
		num("walk_speed", &spec.Control.WalkSpeed),
		num("run_speed", &spec.Control.RunSpeed),
		num("base_turn_rate", &spec.Control.BaseTurnRate),
		num("base_look_rate", &spec.Control.BaseLookRate),
		num("jump_z_velocity", &spec.Movement.JumpZVelocity),
		num("air_control", &spec.Movement.AirControl),
		num("rotation_rate_yaw", &spec.Movement.RotationRateYaw),
		num("target_arm_length", &spec.CameraBoom.TargetArmLength),
	}
	for _, err := range fields {
		if err != nil {
			return err
		}
	}
	return nil
}
