package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data for a moving sprite. Body and
// Shape are created by the physics system; Velocity is applied to the body
// before every step.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Radius   float64
	Velocity cp.Vector
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
