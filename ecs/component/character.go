package component

// Character carries the presentation labels a pawn class assigns to its
// character. They do not affect simulation.
type Character struct {
	Class     string
	Mesh      string
	AnimClass string
}

var CharacterComponent = NewComponent[Character]()
