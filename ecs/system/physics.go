package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/geom"
)

// PhysicsSystem steps the physics space and copies body state back to the
// actors.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(w.DeltaSeconds())

	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		pos := pb.Body.Position()
		t.X, t.Y = pos.X, pos.Y

		if move, ok := ecs.Get(w, e, component.CharacterMovementComponent.Kind()); ok {
			v := pb.Body.Velocity()
			move.Velocity = geom.FromPlane(v, move.Velocity.Z())
		}
	})
}

// Teleport moves an actor and its body.
func Teleport(w *ecs.World, e ecs.Entity, x, y, z float64) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y, t.Z = x, y, z
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pb.Body.SetPosition(cp.Vector{X: x, Y: y})
		pb.Body.SetVelocity(0, 0)
	}
}
