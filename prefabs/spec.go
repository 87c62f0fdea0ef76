package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	CharacterFile = "character.yaml"
	InputFile     = "input.yaml"
	GameModeFile  = "game_mode.yaml"
	ArenaFile     = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CapsuleSpec struct {
	Radius     float64 `yaml:"radius"`
	HalfHeight float64 `yaml:"half_height"`
}

type MovementSpec struct {
	MaxAcceleration     float64 `yaml:"max_acceleration"`
	BrakingDeceleration float64 `yaml:"braking_deceleration"`
	GravityZ            float64 `yaml:"gravity_z"`
	JumpZVelocity       float64 `yaml:"jump_z_velocity"`
	AirControl          float64 `yaml:"air_control"`
	RotationRateYaw     float64 `yaml:"rotation_rate_yaw"`
}

type ControlSpec struct {
	WalkSpeed    float64 `yaml:"walk_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
	BaseTurnRate float64 `yaml:"base_turn_rate"`
	BaseLookRate float64 `yaml:"base_look_rate"`
}

type CameraBoomSpec struct {
	TargetArmLength float64    `yaml:"target_arm_length"`
	ProbeRadius     float64    `yaml:"probe_radius"`
	DoCollisionTest *bool      `yaml:"do_collision_test"`
	SocketOffset    [3]float64 `yaml:"socket_offset"`
	FOV             float64    `yaml:"fov"`
}

type ControllerSpec struct {
	InputYawScale   float64 `yaml:"input_yaw_scale"`
	InputPitchScale float64 `yaml:"input_pitch_scale"`
	MinPitch        float64 `yaml:"min_pitch"`
	MaxPitch        float64 `yaml:"max_pitch"`
}

type CharacterSpec struct {
	Name       string         `yaml:"name"`
	Capsule    CapsuleSpec    `yaml:"capsule"`
	Movement   MovementSpec   `yaml:"movement"`
	Control    ControlSpec    `yaml:"control"`
	CameraBoom CameraBoomSpec `yaml:"camera_boom"`
	Controller ControllerSpec `yaml:"controller"`
}

func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](CharacterFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ActionMappingSpec maps a named action to the controls that trigger it.
type ActionMappingSpec struct {
	Name           string   `yaml:"name"`
	Keys           []string `yaml:"keys"`
	MouseButtons   []string `yaml:"mouse_buttons"`
	GamepadButtons []string `yaml:"gamepad_buttons"`
}

// AxisKeySpec contributes Scale while a key or button is held.
type AxisKeySpec struct {
	Key   string  `yaml:"key"`
	Scale float64 `yaml:"scale"`
}

// AxisSourceSpec reads a continuous device axis.
type AxisSourceSpec struct {
	Axis     string  `yaml:"axis"`
	Scale    float64 `yaml:"scale"`
	Deadzone float64 `yaml:"deadzone"`
}

type AxisMappingSpec struct {
	Name    string           `yaml:"name"`
	Keys    []AxisKeySpec    `yaml:"keys"`
	Mouse   []AxisSourceSpec `yaml:"mouse"`
	Gamepad []AxisSourceSpec `yaml:"gamepad"`
}

type InputSpec struct {
	Actions []ActionMappingSpec `yaml:"actions"`
	Axes    []AxisMappingSpec   `yaml:"axes"`
}

func LoadInputSpec() (*InputSpec, error) {
	spec, err := LoadSpec[InputSpec](InputFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PawnClassSpec struct {
	Path      string `yaml:"path"`
	Parent    string `yaml:"parent"`
	Blueprint string `yaml:"blueprint"`
}

type GameModeSpec struct {
	Name            string          `yaml:"name"`
	DefaultPawnPath string          `yaml:"default_pawn_path"`
	PawnClasses     []PawnClassSpec `yaml:"pawn_classes"`
	Spawn           [3]float64      `yaml:"spawn"`
}

func LoadGameModeSpec() (*GameModeSpec, error) {
	spec, err := LoadSpec[GameModeSpec](GameModeFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WallSpec struct {
	From      [2]float64 `yaml:"from"`
	To        [2]float64 `yaml:"to"`
	Thickness float64    `yaml:"thickness"`
}

type ArenaSpec struct {
	Name  string     `yaml:"name"`
	Walls []WallSpec `yaml:"walls"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
