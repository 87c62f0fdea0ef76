package component

import "github.com/go-gl/mathgl/mgl64"

// Pawn holds how the actor follows its controller and the movement input
// accumulated during the frame.
type Pawn struct {
	UseControllerRotationPitch bool
	UseControllerRotationYaw   bool
	UseControllerRotationRoll  bool

	pendingInput mgl64.Vec3
}

// AddMovementInput accumulates a world direction scaled by value.
func (p *Pawn) AddMovementInput(dir mgl64.Vec3, value float64) {
	p.pendingInput = p.pendingInput.Add(dir.Mul(value))
}

// PendingMovementInput returns the accumulated input without clearing it.
func (p *Pawn) PendingMovementInput() mgl64.Vec3 {
	return p.pendingInput
}

// ConsumeMovementInput returns and clears the accumulated input.
func (p *Pawn) ConsumeMovementInput() mgl64.Vec3 {
	v := p.pendingInput
	p.pendingInput = mgl64.Vec3{}
	return v
}

var PawnComponent = NewComponent[Pawn]()
