package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/geom"
)

// CameraBoomSystem places every boom at its actor and its camera at the end
// of the arm, pulled in when a wall blocks the arm.
type CameraBoomSystem struct{}

func NewCameraBoomSystem() *CameraBoomSystem {
	return &CameraBoomSystem{}
}

func (s *CameraBoomSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()

	ecs.ForEach(w, component.CameraBoomComponent.Kind(), func(e ecs.Entity, boom *component.CameraBoom) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		pivot := mgl64.Vec3{t.X, t.Y, t.Z}
		if capsule, ok := ecs.Get(w, e, component.CapsuleComponent.Kind()); ok {
			pivot = pivot.Add(mgl64.Vec3{0, 0, capsule.HalfHeight})
		}

		rot := geom.Rotator{Yaw: t.Yaw}
		if boom.UsePawnControlRotation {
			if ctrl, ok := possessingController(w, e); ok {
				rot = ctrl.ControlRotation
			}
		}

		forward := rot.Forward()
		arm := boom.TargetArmLength
		if boom.DoCollisionTest && pw != nil && arm > 0 {
			end := pivot.Sub(forward.Mul(arm))
			if hit, ok := pw.FirstWallHit(pivot.X(), pivot.Y(), end.X(), end.Y(), boom.ProbeRadius); ok {
				arm *= hit.Alpha
			}
		}

		boom.Pivot = pivot
		boom.CurrentArmLength = arm

		cam := boom.Camera
		if cam == nil {
			return
		}
		offset := rot.Matrix().Mul3x1(boom.SocketOffset)
		cam.Position = pivot.Sub(forward.Mul(arm)).Add(offset)
		cam.Yaw = rot.Yaw
		cam.Pitch = rot.Pitch
		if cam.UsePawnControlRotation {
			if ctrl, ok := possessingController(w, e); ok {
				cam.Yaw = ctrl.ControlRotation.Yaw
				cam.Pitch = ctrl.ControlRotation.Pitch
			}
		}
	})
}
