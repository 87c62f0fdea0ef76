// Package gamemode selects and spawns the default pawn for a session.
package gamemode

import (
	"fmt"
	"sort"

	"github.com/milk9111/ptest/prefabs"
)

// BaseCharacterName is the native character class every pawn class derives
// from.
const BaseCharacterName = "PTestCharacter"

// PawnClass is a spawnable pawn type. A class with a blueprint runs it after
// its parent's blueprint.
type PawnClass struct {
	Name      string
	Parent    *PawnClass
	Blueprint string
}

// BaseCharacterClass is the fallback default pawn.
var BaseCharacterClass = &PawnClass{Name: BaseCharacterName}

// Chain returns the class hierarchy from the root down to c.
func (c *PawnClass) Chain() []*PawnClass {
	var chain []*PawnClass
	for cur := c; cur != nil; cur = cur.Parent {
		chain = append([]*PawnClass{cur}, chain...)
	}
	return chain
}

// ClassRegistry resolves asset paths to pawn classes.
type ClassRegistry struct {
	classes map[string]*PawnClass
}

func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{classes: make(map[string]*PawnClass)}
}

func (r *ClassRegistry) Register(path string, class *PawnClass) {
	r.classes[path] = class
}

// Lookup finds the class registered at path.
func (r *ClassRegistry) Lookup(path string) (*PawnClass, bool) {
	if r == nil || path == "" {
		return nil, false
	}
	c, ok := r.classes[path]
	return c, ok
}

// Paths lists registered paths in sorted order.
func (r *ClassRegistry) Paths() []string {
	paths := make([]string, 0, len(r.classes))
	for p := range r.classes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// RegistryFromSpec registers the pawn classes declared by a game mode prefab.
// A parent is either the base character name or another declared path.
func RegistryFromSpec(spec *prefabs.GameModeSpec) (*ClassRegistry, error) {
	r := NewClassRegistry()
	if spec == nil {
		return r, nil
	}

	declared := make(map[string]prefabs.PawnClassSpec, len(spec.PawnClasses))
	for _, pc := range spec.PawnClasses {
		if pc.Path == "" {
			return nil, fmt.Errorf("gamemode: pawn class with empty path")
		}
		if _, dup := declared[pc.Path]; dup {
			return nil, fmt.Errorf("gamemode: pawn class %s declared twice", pc.Path)
		}
		declared[pc.Path] = pc
	}

	var resolve func(path string, visiting map[string]bool) (*PawnClass, error)
	resolve = func(path string, visiting map[string]bool) (*PawnClass, error) {
		if c, ok := r.classes[path]; ok {
			return c, nil
		}
		if visiting[path] {
			return nil, fmt.Errorf("gamemode: pawn class %s inherits from itself", path)
		}
		visiting[path] = true

		pc := declared[path]
		parent := BaseCharacterClass
		switch pc.Parent {
		case "", BaseCharacterName:
		default:
			if _, ok := declared[pc.Parent]; !ok {
				return nil, fmt.Errorf("gamemode: pawn class %s: unknown parent %s", path, pc.Parent)
			}
			p, err := resolve(pc.Parent, visiting)
			if err != nil {
				return nil, err
			}
			parent = p
		}

		c := &PawnClass{Name: className(path), Parent: parent, Blueprint: pc.Blueprint}
		r.Register(path, c)
		return c, nil
	}

	for _, pc := range spec.PawnClasses {
		if _, err := resolve(pc.Path, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func className(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
