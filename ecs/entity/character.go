package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/milk9111/ptest/character"
	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/prefabs"
)

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// NewCharacter spawns a character pawn at (x, y, z) from its prefab. The
// pawn is unpossessed until Possess is called.
func NewCharacter(w *ecs.World, spec *prefabs.CharacterSpec, x, y, z float64, logger *zap.Logger) (ecs.Entity, error) {
	if spec == nil {
		loaded, err := prefabs.LoadCharacterSpec()
		if err != nil {
			return 0, fmt.Errorf("character: load spec: %w", err)
		}
		spec = loaded
	}

	e := ecs.CreateEntity(w)
	fail := func(err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, err
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z}); err != nil {
		return fail(fmt.Errorf("character: add transform: %w", err))
	}

	capsule := &component.Capsule{
		Radius:     orDefault(spec.Capsule.Radius, 42),
		HalfHeight: orDefault(spec.Capsule.HalfHeight, 96),
	}
	if capsule.Radius < 0 || capsule.HalfHeight < 0 {
		return fail(fmt.Errorf("character: capsule %gx%g must not be negative", capsule.Radius, capsule.HalfHeight))
	}
	if err := ecs.Add(w, e, component.CapsuleComponent.Kind(), capsule); err != nil {
		return fail(fmt.Errorf("character: add capsule: %w", err))
	}

	state := component.NewCharacterControlState()
	movement := component.NewCharacterMovement()
	boom := component.NewCameraBoom(300)
	ApplyTuning(spec, state, movement, boom)
	movement.MaxWalkSpeed = state.WalkSpeed

	// Controller rotation only drives the camera; the boom follows it.
	pawn := &component.Pawn{}

	if err := ecs.Add(w, e, component.CharacterControlStateComponent.Kind(), state); err != nil {
		return fail(fmt.Errorf("character: add control state: %w", err))
	}
	if err := ecs.Add(w, e, component.CharacterMovementComponent.Kind(), movement); err != nil {
		return fail(fmt.Errorf("character: add movement: %w", err))
	}
	if err := ecs.Add(w, e, component.PawnComponent.Kind(), pawn); err != nil {
		return fail(fmt.Errorf("character: add pawn: %w", err))
	}
	if err := ecs.Add(w, e, component.CameraBoomComponent.Kind(), boom); err != nil {
		return fail(fmt.Errorf("character: add camera boom: %w", err))
	}
	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Class: spec.Name}); err != nil {
		return fail(fmt.Errorf("character: add character: %w", err))
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body, shape := pw.AddCharacter(e, x, y, capsule.Radius)
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Shape: shape}); err != nil {
			return fail(fmt.Errorf("character: add physics body: %w", err))
		}
	}

	ctrl := character.NewController(&character.EntityHost{World: w, Pawn: e}, state, movement, pawn, logger)
	if err := ecs.Add(w, e, character.ControllerComponent.Kind(), ctrl); err != nil {
		return fail(fmt.Errorf("character: add controller: %w", err))
	}

	return e, nil
}

// ApplyTuning copies prefab tuning onto a character's components. Zero
// fields keep the built-in defaults. Mode flags and max speed are left
// alone.
func ApplyTuning(spec *prefabs.CharacterSpec, state *component.CharacterControlState, movement *component.CharacterMovement, boom *component.CameraBoom) {
	if spec == nil {
		return
	}
	if state != nil {
		state.WalkSpeed = orDefault(spec.Control.WalkSpeed, component.DefaultWalkSpeed)
		state.RunSpeed = orDefault(spec.Control.RunSpeed, component.DefaultRunSpeed)
		state.BaseTurnRate = orDefault(spec.Control.BaseTurnRate, component.DefaultBaseTurnRate)
		state.BaseLookRate = orDefault(spec.Control.BaseLookRate, component.DefaultBaseLookRate)
	}
	if movement != nil {
		def := component.NewCharacterMovement()
		m := spec.Movement
		movement.MaxAcceleration = orDefault(m.MaxAcceleration, def.MaxAcceleration)
		movement.BrakingDeceleration = orDefault(m.BrakingDeceleration, def.BrakingDeceleration)
		movement.GravityZ = orDefault(m.GravityZ, def.GravityZ)
		movement.JumpZVelocity = orDefault(m.JumpZVelocity, def.JumpZVelocity)
		movement.AirControl = orDefault(m.AirControl, def.AirControl)
		movement.RotationRateYaw = orDefault(m.RotationRateYaw, def.RotationRateYaw)
	}
	if boom != nil {
		b := spec.CameraBoom
		boom.TargetArmLength = orDefault(b.TargetArmLength, 300)
		boom.ProbeRadius = orDefault(b.ProbeRadius, 12)
		if b.DoCollisionTest != nil {
			boom.DoCollisionTest = *b.DoCollisionTest
		}
		boom.SocketOffset = mgl64.Vec3{b.SocketOffset[0], b.SocketOffset[1], b.SocketOffset[2]}
		if boom.Camera != nil {
			boom.Camera.FOV = orDefault(b.FOV, 90)
		}
	}
}

// RetuneCharacter re-applies a prefab to a live character. A character that
// was running keeps running at the new run speed, even while aiming;
// otherwise it walks at the new walk speed.
func RetuneCharacter(spec *prefabs.CharacterSpec, state *component.CharacterControlState, movement *component.CharacterMovement, boom *component.CameraBoom) {
	if spec == nil || state == nil || movement == nil {
		return
	}
	running := movement.MaxWalkSpeed == state.RunSpeed && state.RunSpeed != state.WalkSpeed
	ApplyTuning(spec, state, movement, boom)
	if running {
		movement.MaxWalkSpeed = state.RunSpeed
	} else {
		movement.MaxWalkSpeed = state.WalkSpeed
	}
}
