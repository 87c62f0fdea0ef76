package component

// Transform is an actor's world location and facing. Z is up.
type Transform struct {
	X   float64
	Y   float64
	Z   float64
	Yaw float64
}

var TransformComponent = NewComponent[Transform]()

// Capsule is the collision capsule of a character.
type Capsule struct {
	Radius     float64
	HalfHeight float64
}

var CapsuleComponent = NewComponent[Capsule]()
