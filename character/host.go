package character

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/geom"
)

// ControllerComponent attaches a character Controller to its pawn entity.
var ControllerComponent = component.NewComponent[Controller]()

// EntityHost serves a pawn entity's Host needs from the ECS world. Rotation
// input is dropped while the pawn is unpossessed.
type EntityHost struct {
	World *ecs.World
	Pawn  ecs.Entity
}

func (h *EntityHost) controller() (*component.Controller, bool) {
	poss, ok := ecs.Get(h.World, h.Pawn, component.PossessionComponent.Kind())
	if !ok || poss.Controller == 0 {
		return nil, false
	}
	return ecs.Get(h.World, ecs.Entity(poss.Controller), component.ControllerComponent.Kind())
}

func (h *EntityHost) ControlRotation() (geom.Rotator, bool) {
	ctrl, ok := h.controller()
	if !ok {
		return geom.Rotator{}, false
	}
	return ctrl.ControlRotation, true
}

func (h *EntityHost) AddMovementInput(dir mgl64.Vec3, scale float64) {
	if pawn, ok := ecs.Get(h.World, h.Pawn, component.PawnComponent.Kind()); ok {
		pawn.AddMovementInput(dir, scale)
	}
}

func (h *EntityHost) AddYawInput(delta float64) {
	if ctrl, ok := h.controller(); ok {
		ctrl.AddYawInput(delta)
	}
}

func (h *EntityHost) AddPitchInput(delta float64) {
	if ctrl, ok := h.controller(); ok {
		ctrl.AddPitchInput(delta)
	}
}

func (h *EntityHost) DeltaSeconds() float64 {
	return h.World.DeltaSeconds()
}
