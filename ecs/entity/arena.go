package entity

import (
	"fmt"

	"github.com/milk9111/ptest/ecs"
	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/prefabs"
)

// NewArena builds the arena walls into the world's physics space.
func NewArena(w *ecs.World, spec *prefabs.ArenaSpec) ([]ecs.Entity, error) {
	if spec == nil {
		loaded, err := prefabs.LoadArenaSpec()
		if err != nil {
			return nil, fmt.Errorf("arena: load spec: %w", err)
		}
		spec = loaded
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return nil, fmt.Errorf("arena: world has no physics")
	}

	walls := make([]ecs.Entity, 0, len(spec.Walls))
	for i, ws := range spec.Walls {
		e := ecs.CreateEntity(w)
		wall := &component.Wall{
			AX: ws.From[0], AY: ws.From[1],
			BX: ws.To[0], BY: ws.To[1],
			Thickness: orDefault(ws.Thickness, 10),
		}
		if err := ecs.Add(w, e, component.WallComponent.Kind(), wall); err != nil {
			return nil, fmt.Errorf("arena: wall %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
			return nil, fmt.Errorf("arena: wall %d tag: %w", i, err)
		}
		pw.AddWall(e, wall.AX, wall.AY, wall.BX, wall.BY, wall.Thickness)
		walls = append(walls, e)
	}
	return walls, nil
}
