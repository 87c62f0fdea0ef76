package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	categoryWall uint = 1 << iota
	categoryCharacter
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeCharacter
)

// PhysicsWorld owns the Chipmunk space. The space models the horizontal
// plane only: X and Y map to world X and Y, height is integrated by the
// movement system.
type PhysicsWorld struct {
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
}

// NewPhysicsWorld creates an empty top-down physics world.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	return &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddWall adds a static wall segment.
func (pw *PhysicsWorld) AddWall(e Entity, ax, ay, bx, by, thickness float64) *cp.Shape {
	shape := cp.NewSegment(pw.space.StaticBody, cp.Vector{X: ax, Y: ay}, cp.Vector{X: bx, Y: by}, thickness/2)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeWall)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryWall, Mask: cp.ALL_CATEGORIES})
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return shape
}

// AddCharacter creates a non-rotating circle body for a character capsule.
func (pw *PhysicsWorld) AddCharacter(e Entity, x, y, radius float64) (*cp.Body, *cp.Shape) {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryCharacter, Mask: cp.ALL_CATEGORIES})

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return body, shape
}

// Remove drops a shape (and its body when it is not the static body).
func (pw *PhysicsWorld) Remove(shape *cp.Shape) {
	if pw == nil || shape == nil {
		return
	}
	body := shape.Body()
	pw.space.RemoveShape(shape)
	if body != nil && body != pw.space.StaticBody {
		pw.space.RemoveBody(body)
	}
	delete(pw.shapeToEntity, shape)
}

// Step advances the simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// WallHit is the first wall hit along a swept segment.
type WallHit struct {
	X, Y   float64
	Alpha  float64
	Entity Entity
}

// FirstWallHit sweeps a circle of radius from a to b against walls only.
func (pw *PhysicsWorld) FirstWallHit(ax, ay, bx, by, radius float64) (WallHit, bool) {
	if pw == nil {
		return WallHit{}, false
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: categoryWall}
	info := pw.space.SegmentQueryFirst(cp.Vector{X: ax, Y: ay}, cp.Vector{X: bx, Y: by}, radius, filter)
	if info.Shape == nil {
		return WallHit{}, false
	}
	return WallHit{
		X:      info.Point.X,
		Y:      info.Point.Y,
		Alpha:  info.Alpha,
		Entity: pw.shapeToEntity[info.Shape],
	}, true
}

// EntityForShape maps a shape back to its owner.
func (pw *PhysicsWorld) EntityForShape(shape *cp.Shape) (Entity, bool) {
	if pw == nil {
		return 0, false
	}
	e, ok := pw.shapeToEntity[shape]
	return e, ok
}
