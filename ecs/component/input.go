package component

import "github.com/milk9111/ptest/input"

// PlayerInput holds the handlers a possessed pawn bound to named input.
type PlayerInput struct {
	Bindings *input.Component
}

var PlayerInputComponent = NewComponent[PlayerInput]()
