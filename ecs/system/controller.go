package system

import (
	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
)

// ControllerSystem applies the frame's accumulated look input to every
// controller and turns pawns that follow their controller's yaw.
type ControllerSystem struct{}

func NewControllerSystem() *ControllerSystem {
	return &ControllerSystem{}
}

func (s *ControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ControllerComponent.Kind(), func(e ecs.Entity, c *component.Controller) {
		rot := c.ControlRotation
		rot.Yaw += c.PendingYaw * c.InputYawScale
		rot.Pitch += c.PendingPitch * c.InputPitchScale
		c.ControlRotation = rot.ClampPitch(c.MinPitch, c.MaxPitch).Normalized()
		c.PendingYaw = 0
		c.PendingPitch = 0
	})

	for _, e := range w.Query(component.PawnComponent.Kind(), component.TransformComponent.Kind()) {
		pawn, _ := ecs.Get(w, e, component.PawnComponent.Kind())
		if !pawn.UseControllerRotationYaw {
			continue
		}
		ctrl, ok := possessingController(w, e)
		if !ok {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		t.Yaw = ctrl.ControlRotation.Yaw
	}
}
