package system

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/ecs/entity"
	"github.com/milk9111/ptest/input"
	"github.com/milk9111/ptest/prefabs"
)

// ChangeSource reports prefab files changed since the last call.
type ChangeSource interface {
	Drain() []string
}

// ClassTuner derives a pawn class's tuning from the character prefab.
type ClassTuner func(class string, base *prefabs.CharacterSpec) (*prefabs.CharacterSpec, error)

// TuningReloadSystem re-applies edited prefabs to the running world. A file
// that fails to load is logged and the previous tuning stays in effect.
type TuningReloadSystem struct {
	source ChangeSource
	logger *zap.Logger

	// ClassTuning re-applies class blueprints on top of a reloaded
	// character.yaml. Nil applies the prefab as is.
	ClassTuning ClassTuner

	// OnInputMappings receives rebuilt mappings after input.yaml changes.
	OnInputMappings func(*input.Mappings)
}

func NewTuningReloadSystem(source ChangeSource, logger *zap.Logger) *TuningReloadSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TuningReloadSystem{source: source, logger: logger}
}

func (s *TuningReloadSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	changed := make(map[string]bool)
	scripts := false
	for _, path := range s.source.Drain() {
		changed[prefabs.BaseName(path)] = true
		if filepath.Ext(path) == ".tengo" {
			scripts = true
		}
	}

	if changed[prefabs.CharacterFile] || scripts {
		s.reloadCharacter(w)
	}
	if changed[prefabs.InputFile] {
		s.reloadInput(w)
	}
}

func (s *TuningReloadSystem) reloadCharacter(w *ecs.World) {
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		s.logger.Warn("character tuning reload failed", zap.Error(err))
		return
	}

	count := 0
	for _, e := range w.Query(component.CharacterControlStateComponent.Kind(), component.CharacterMovementComponent.Kind()) {
		tuning := spec
		if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok && s.ClassTuning != nil {
			classSpec, err := s.ClassTuning(ch.Class, spec)
			if err != nil {
				s.logger.Warn("class tuning reload failed", zap.String("class", ch.Class), zap.Stringer("entity", e), zap.Error(err))
				continue
			}
			tuning = classSpec
		}

		state, _ := ecs.Get(w, e, component.CharacterControlStateComponent.Kind())
		move, _ := ecs.Get(w, e, component.CharacterMovementComponent.Kind())
		boom, _ := ecs.Get(w, e, component.CameraBoomComponent.Kind())
		entity.RetuneCharacter(tuning, state, move, boom)
		count++
	}

	s.logger.Info("character tuning reloaded", zap.Int("characters", count))
	w.Events().Push(ecs.Event{Type: ecs.EventTuningReloaded, Data: prefabs.CharacterFile})
}

func (s *TuningReloadSystem) reloadInput(w *ecs.World) {
	spec, err := prefabs.LoadInputSpec()
	if err != nil {
		s.logger.Warn("input mapping reload failed", zap.Error(err))
		return
	}
	m, err := input.NewMappings(spec)
	if err != nil {
		s.logger.Warn("input mapping reload failed", zap.Error(err))
		return
	}
	if s.OnInputMappings != nil {
		s.OnInputMappings(m)
	}

	s.logger.Info("input mappings reloaded")
	w.Events().Push(ecs.Event{Type: ecs.EventTuningReloaded, Data: prefabs.InputFile})
}
