package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk2D body moving an actor across the
// horizontal plane.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
