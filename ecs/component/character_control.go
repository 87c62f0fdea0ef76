package component

const (
	DefaultWalkSpeed    = 300.0
	DefaultRunSpeed     = 750.0
	DefaultBaseTurnRate = 45.0
	DefaultBaseLookRate = 45.0
)

// CharacterControlState holds the mode flags and presets mutated by the
// character's discrete input handlers. Max speed itself lives on
// CharacterMovement.
type CharacterControlState struct {
	WalkSpeed float64
	RunSpeed  float64

	CanRun      bool
	IsAiming    bool
	IsCrouching bool

	// BaseTurnRate and BaseLookRate are degrees per second at full
	// deflection of a rate-based axis.
	BaseTurnRate float64
	BaseLookRate float64
}

// NewCharacterControlState returns the state a freshly spawned character
// starts with.
func NewCharacterControlState() *CharacterControlState {
	return &CharacterControlState{
		WalkSpeed:    DefaultWalkSpeed,
		RunSpeed:     DefaultRunSpeed,
		CanRun:       true,
		BaseTurnRate: DefaultBaseTurnRate,
		BaseLookRate: DefaultBaseLookRate,
	}
}

var CharacterControlStateComponent = NewComponent[CharacterControlState]()
