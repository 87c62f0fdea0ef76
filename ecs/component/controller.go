package component

import "github.com/milk9111/ptest/geom"

// Controller owns the view rotation of a possessed pawn and the rotation
// input accumulated during the frame.
type Controller struct {
	ControlRotation geom.Rotator

	InputYawScale   float64
	InputPitchScale float64
	MinPitch        float64
	MaxPitch        float64

	PendingYaw   float64
	PendingPitch float64
}

func NewController() *Controller {
	return &Controller{
		InputYawScale:   1,
		InputPitchScale: 1,
		MinPitch:        -89,
		MaxPitch:        89,
	}
}

// AddYawInput accumulates a yaw delta in degrees.
func (c *Controller) AddYawInput(delta float64) {
	c.PendingYaw += delta
}

// AddPitchInput accumulates a pitch delta in degrees.
func (c *Controller) AddPitchInput(delta float64) {
	c.PendingPitch += delta
}

var ControllerComponent = NewComponent[Controller]()

// Possession links a pawn to the controller entity driving it. The target
// is zero while unpossessed.
type Possession struct {
	Controller uint64
}

var PossessionComponent = NewComponent[Possession]()
