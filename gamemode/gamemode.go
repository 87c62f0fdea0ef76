package gamemode

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/ecs/entity"
	"github.com/milk9111/ptest/prefabs"
)

// ScriptLoader returns a blueprint's source by file name.
type ScriptLoader func(name string) ([]byte, error)

// GameMode decides which pawn a player gets and where it appears.
type GameMode struct {
	Name             string
	DefaultPawnClass *PawnClass
	SpawnPoint       mgl64.Vec3

	// Character is the prefab every pawn starts from. Nil loads
	// character.yaml on each spawn.
	Character *prefabs.CharacterSpec
	Scripts   ScriptLoader

	// spawned maps a class name to the class it was spawned from.
	spawned map[string]*PawnClass
	logger  *zap.Logger
}

// New builds a game mode from its prefab. When the default pawn path is not
// registered the base character class stays the default.
func New(registry *ClassRegistry, spec *prefabs.GameModeSpec, logger *zap.Logger) *GameMode {
	if logger == nil {
		logger = zap.NewNop()
	}
	gm := &GameMode{
		DefaultPawnClass: BaseCharacterClass,
		Scripts:          prefabs.LoadScript,
		spawned:          make(map[string]*PawnClass),
		logger:           logger,
	}
	if spec == nil {
		return gm
	}

	gm.Name = spec.Name
	gm.SpawnPoint = mgl64.Vec3{spec.Spawn[0], spec.Spawn[1], spec.Spawn[2]}

	if class, ok := registry.Lookup(spec.DefaultPawnPath); ok {
		gm.DefaultPawnClass = class
	} else if spec.DefaultPawnPath != "" {
		logger.Warn("default pawn class not found, using base character",
			zap.String("path", spec.DefaultPawnPath),
			zap.String("class", BaseCharacterName))
	}
	return gm
}

// SpawnDefaultPawn creates a pawn of the default class at at.
func (gm *GameMode) SpawnDefaultPawn(w *ecs.World, at mgl64.Vec3) (ecs.Entity, error) {
	return gm.SpawnPawn(w, gm.DefaultPawnClass, at)
}

// SpawnPawn creates a pawn of class at at, running the class blueprints
// from the root class down.
func (gm *GameMode) SpawnPawn(w *ecs.World, class *PawnClass, at mgl64.Vec3) (ecs.Entity, error) {
	if class == nil {
		class = BaseCharacterClass
	}

	spec, err := gm.characterSpec()
	if err != nil {
		return 0, err
	}

	look, err := gm.runBlueprints(class, spec)
	if err != nil {
		return 0, err
	}

	e, err := entity.NewCharacter(w, spec, at.X(), at.Y(), at.Z(), gm.logger)
	if err != nil {
		return 0, fmt.Errorf("gamemode: spawn %s: %w", class.Name, err)
	}

	gm.spawned[class.Name] = class

	if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
		ch.Class = class.Name
		ch.Mesh = look.Mesh
		ch.AnimClass = look.AnimClass
	}

	gm.logger.Info("spawned pawn",
		zap.String("class", class.Name),
		zap.Stringer("entity", e),
		zap.String("mesh", look.Mesh))
	return e, nil
}

// ClassTuning returns a copy of base with the named class's blueprints
// applied. Classes this game mode never spawned get a plain copy.
func (gm *GameMode) ClassTuning(className string, base *prefabs.CharacterSpec) (*prefabs.CharacterSpec, error) {
	if base == nil {
		return nil, fmt.Errorf("gamemode: tuning %s: nil character spec", className)
	}
	spec := *base
	class, ok := gm.spawned[className]
	if !ok {
		return &spec, nil
	}
	if _, err := gm.runBlueprints(class, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (gm *GameMode) runBlueprints(class *PawnClass, spec *prefabs.CharacterSpec) (Appearance, error) {
	var look Appearance
	for _, c := range class.Chain() {
		if c.Blueprint == "" {
			continue
		}
		if gm.Scripts == nil {
			return look, fmt.Errorf("gamemode: blueprint %s: no script loader", c.Blueprint)
		}
		src, err := gm.Scripts(c.Blueprint)
		if err != nil {
			return look, fmt.Errorf("gamemode: blueprint %s: %w", c.Blueprint, err)
		}
		if err := RunBlueprint(c.Blueprint, src, spec, &look); err != nil {
			return look, err
		}
	}
	return look, nil
}

// StartPlay spawns the default pawn at the spawn point and gives it to a new
// player controller.
func (gm *GameMode) StartPlay(w *ecs.World) (pawn, controller ecs.Entity, err error) {
	spec, err := gm.characterSpec()
	if err != nil {
		return 0, 0, err
	}

	pawn, err = gm.SpawnDefaultPawn(w, gm.SpawnPoint)
	if err != nil {
		return 0, 0, err
	}
	controller, err = entity.NewPlayerController(w, spec)
	if err != nil {
		return 0, 0, fmt.Errorf("gamemode: %w", err)
	}
	if err := entity.Possess(w, controller, pawn); err != nil {
		return 0, 0, fmt.Errorf("gamemode: %w", err)
	}
	return pawn, controller, nil
}

// characterSpec returns a copy so blueprints never edit the shared prefab.
func (gm *GameMode) characterSpec() (*prefabs.CharacterSpec, error) {
	if gm.Character != nil {
		spec := *gm.Character
		return &spec, nil
	}
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		return nil, fmt.Errorf("gamemode: %w", err)
	}
	return spec, nil
}
