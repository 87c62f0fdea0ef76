package entity

import (
	"fmt"

	"github.com/milk9111/ptest/character"
	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/input"
	"github.com/milk9111/ptest/prefabs"
)

// NewPlayerController creates the controller entity that owns the view
// rotation.
func NewPlayerController(w *ecs.World, spec *prefabs.CharacterSpec) (ecs.Entity, error) {
	ctrl := component.NewController()
	if spec != nil {
		c := spec.Controller
		ctrl.InputYawScale = orDefault(c.InputYawScale, ctrl.InputYawScale)
		ctrl.InputPitchScale = orDefault(c.InputPitchScale, ctrl.InputPitchScale)
		ctrl.MinPitch = orDefault(c.MinPitch, ctrl.MinPitch)
		ctrl.MaxPitch = orDefault(c.MaxPitch, ctrl.MaxPitch)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ControllerComponent.Kind(), ctrl); err != nil {
		return 0, fmt.Errorf("player controller: add controller: %w", err)
	}
	return e, nil
}

// Possess hands pawn to controller: the view starts behind the pawn and the
// pawn's handlers are bound to player input.
func Possess(w *ecs.World, controller, pawn ecs.Entity) error {
	ctrl, ok := ecs.Get(w, controller, component.ControllerComponent.Kind())
	if !ok {
		return fmt.Errorf("possess: entity %s has no controller", controller)
	}
	charCtrl, ok := ecs.Get(w, pawn, character.ControllerComponent.Kind())
	if !ok {
		return fmt.Errorf("possess: entity %s is not a character", pawn)
	}
	if t, ok := ecs.Get(w, pawn, component.TransformComponent.Kind()); ok {
		ctrl.ControlRotation.Yaw = t.Yaw
	}

	if err := ecs.Add(w, pawn, component.PossessionComponent.Kind(), &component.Possession{Controller: uint64(controller)}); err != nil {
		return fmt.Errorf("possess: add possession: %w", err)
	}

	bindings := input.NewComponent()
	charCtrl.SetupInput(bindings)
	if err := ecs.Add(w, pawn, component.PlayerInputComponent.Kind(), &component.PlayerInput{Bindings: bindings}); err != nil {
		return fmt.Errorf("possess: add player input: %w", err)
	}
	if err := ecs.Add(w, pawn, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fmt.Errorf("possess: add player tag: %w", err)
	}
	return nil
}

// Unpossess detaches the pawn from its controller and input.
func Unpossess(w *ecs.World, pawn ecs.Entity) {
	ecs.Remove(w, pawn, component.PossessionComponent.Kind())
	ecs.Remove(w, pawn, component.PlayerInputComponent.Kind())
	ecs.Remove(w, pawn, component.PlayerTagComponent.Kind())
}
