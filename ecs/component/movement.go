package component

import "github.com/go-gl/mathgl/mgl64"

// CharacterMovement is the movement configuration and runtime state of a
// walking character.
type CharacterMovement struct {
	MaxWalkSpeed        float64
	MaxAcceleration     float64
	BrakingDeceleration float64
	GravityZ            float64
	JumpZVelocity       float64
	AirControl          float64

	// RotationRateYaw is degrees per second used when orienting to movement.
	RotationRateYaw          float64
	OrientRotationToMovement bool

	JumpRequested bool
	// Velocity is horizontal in X and Y and vertical in Z.
	Velocity mgl64.Vec3
	Grounded bool
}

// NewCharacterMovement returns the tuned defaults for a third-person
// character.
func NewCharacterMovement() *CharacterMovement {
	return &CharacterMovement{
		MaxWalkSpeed:             DefaultWalkSpeed,
		MaxAcceleration:          2048,
		BrakingDeceleration:      2048,
		GravityZ:                 -980,
		JumpZVelocity:            600,
		AirControl:               0.2,
		RotationRateYaw:          540,
		OrientRotationToMovement: true,
		Grounded:                 true,
	}
}

var CharacterMovementComponent = NewComponent[CharacterMovement]()
