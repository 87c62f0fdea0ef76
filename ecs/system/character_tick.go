package system

import (
	"github.com/milk9111/ptest/character"
	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
)

type characterMode struct {
	aiming   bool
	maxSpeed float64
}

// CharacterTickSystem runs each character's per-frame hook and reports mode
// changes made by this frame's input.
type CharacterTickSystem struct {
	modes map[ecs.Entity]characterMode
}

func NewCharacterTickSystem() *CharacterTickSystem {
	return &CharacterTickSystem{modes: make(map[ecs.Entity]characterMode)}
}

func (s *CharacterTickSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaSeconds()
	seen := make(map[ecs.Entity]struct{})

	ecs.ForEach(w, character.ControllerComponent.Kind(), func(e ecs.Entity, ctrl *character.Controller) {
		ctrl.Tick(dt)
		seen[e] = struct{}{}

		mode := characterMode{aiming: ctrl.IsAiming(), maxSpeed: ctrl.MaxSpeed()}
		prev, ok := s.modes[e]
		s.modes[e] = mode
		if !ok {
			return
		}
		if prev.aiming != mode.aiming {
			w.Events().Push(ecs.Event{Type: ecs.EventAimChanged, Entity: e, Data: mode.aiming})
		}
		if prev.maxSpeed != mode.maxSpeed {
			w.Events().Push(ecs.Event{Type: ecs.EventMaxSpeedChanged, Entity: e, Data: mode.maxSpeed})
		}
	})

	for e := range s.modes {
		if _, ok := seen[e]; !ok {
			delete(s.modes, e)
		}
	}
}

// possessingController returns the controller driving pawn, if any.
func possessingController(w *ecs.World, pawn ecs.Entity) (*component.Controller, bool) {
	poss, ok := ecs.Get(w, pawn, component.PossessionComponent.Kind())
	if !ok || poss.Controller == 0 {
		return nil, false
	}
	return ecs.Get(w, ecs.Entity(poss.Controller), component.ControllerComponent.Kind())
}
