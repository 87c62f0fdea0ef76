package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/geom"
)

// MovementSystem turns each pawn's accumulated movement input into velocity,
// handles jumping and falling, and orients the actor to its movement.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()

	for _, e := range w.Query(component.PawnComponent.Kind(), component.CharacterMovementComponent.Kind(), component.TransformComponent.Kind()) {
		pawn, _ := ecs.Get(w, e, component.PawnComponent.Kind())
		move, _ := ecs.Get(w, e, component.CharacterMovementComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		in := pawn.ConsumeMovementInput()
		in = geom.ClampLength(mgl64.Vec3{in.X(), in.Y(), 0}, 1)

		vel := mgl64.Vec3{move.Velocity.X(), move.Velocity.Y(), 0}
		vel = stepHorizontal(move, vel, in, dt)

		if move.OrientRotationToMovement && in.Len() > 0 {
			target := geom.YawFromDirection(in.X(), in.Y())
			t.Yaw = geom.StepYawToward(t.Yaw, target, move.RotationRateYaw*dt)
		}

		stepVertical(move, t, dt)
		move.Velocity = mgl64.Vec3{vel.X(), vel.Y(), move.Velocity.Z()}

		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
			body.Body.SetVelocity(vel.X(), vel.Y())
			continue
		}
		t.X += vel.X() * dt
		t.Y += vel.Y() * dt
	}
}

func stepHorizontal(move *component.CharacterMovement, vel, in mgl64.Vec3, dt float64) mgl64.Vec3 {
	maxSpeed := move.MaxWalkSpeed

	if in.Len() > 0 {
		accel := move.MaxAcceleration
		if !move.Grounded {
			accel *= move.AirControl
		}
		target := in.Mul(maxSpeed)
		diff := target.Sub(vel)
		step := accel * dt
		if diff.Len() <= step {
			vel = target
		} else {
			vel = vel.Add(diff.Normalize().Mul(step))
		}
	} else if move.Grounded {
		speed := vel.Len()
		decel := move.BrakingDeceleration * dt
		if speed <= decel {
			vel = mgl64.Vec3{}
		} else {
			vel = vel.Sub(vel.Mul(decel / speed))
		}
	}

	return geom.ClampLength(vel, maxSpeed)
}

// stepVertical integrates height. The floor is Z = 0.
func stepVertical(move *component.CharacterMovement, t *component.Transform, dt float64) {
	vz := move.Velocity.Z()

	if move.JumpRequested && move.Grounded {
		vz = move.JumpZVelocity
		move.Grounded = false
		move.JumpRequested = false
	}
	if move.Grounded && t.Z > 0 {
		move.Grounded = false
	}

	if !move.Grounded {
		vz += move.GravityZ * dt
		t.Z += vz * dt
		if t.Z <= 0 {
			t.Z = 0
			vz = 0
			move.Grounded = true
		}
	}

	move.Velocity = mgl64.Vec3{move.Velocity.X(), move.Velocity.Y(), vz}
}
