// Package character implements the third-person character's locomotion,
// aim and run modes and routes its bound input to the host movement and
// rotation accumulators.
package character

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/milk9111/ptest/ecs/component"
	"github.com/milk9111/ptest/geom"
	"github.com/milk9111/ptest/input"
)

// Action and axis names bound by SetupInput.
const (
	ActionJump   = "Jump"
	ActionFire   = "Fire"
	ActionAim    = "Aim"
	ActionRun    = "Run"
	ActionCrouch = "Crouch"

	AxisMoveForward = "MoveForward"
	AxisMoveRight   = "MoveRight"
	AxisTurn        = "Turn"
	AxisTurnRate    = "TurnRate"
	AxisLookUp      = "LookUp"
	AxisLookUpRate  = "LookUpRate"
)

// Host is what the controller needs from the world it lives in.
type Host interface {
	// ControlRotation is the possessing controller's view rotation. ok is
	// false while the character is not possessed.
	ControlRotation() (rot geom.Rotator, ok bool)
	AddMovementInput(dir mgl64.Vec3, scale float64)
	AddYawInput(delta float64)
	AddPitchInput(delta float64)
	DeltaSeconds() float64
}

// Controller handles the character's discrete and continuous input events.
// Every handler is total: it either applies its effect or does nothing.
type Controller struct {
	State    *component.CharacterControlState
	Movement *component.CharacterMovement
	Pawn     *component.Pawn

	host   Host
	logger *zap.Logger
}

func NewController(host Host, state *component.CharacterControlState, movement *component.CharacterMovement, pawn *component.Pawn, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		State:    state,
		Movement: movement,
		Pawn:     pawn,
		host:     host,
		logger:   logger,
	}
}

// SetupInput binds every named action and axis to its handler.
func (c *Controller) SetupInput(in *input.Component) {
	in.BindAction(ActionJump, input.Pressed, c.Jump)
	in.BindAction(ActionJump, input.Released, c.StopJumping)

	in.BindAction(ActionFire, input.Pressed, c.FirePress)
	in.BindAction(ActionFire, input.Released, c.FireRelease)

	in.BindAction(ActionAim, input.Pressed, c.AimPress)
	in.BindAction(ActionAim, input.Released, c.AimRelease)

	in.BindAction(ActionRun, input.Pressed, c.RunPress)
	in.BindAction(ActionRun, input.Released, c.RunRelease)

	in.BindAction(ActionCrouch, input.Pressed, c.CrouchPress)
	in.BindAction(ActionCrouch, input.Released, c.CrouchRelease)

	in.BindAxis(AxisMoveForward, c.MoveForward)
	in.BindAxis(AxisMoveRight, c.MoveRight)

	// Turn and LookUp come from devices that report an absolute delta (a
	// mouse); the Rate variants come from devices that report a deflection
	// (an analog stick).
	in.BindAxis(AxisTurn, c.TurnAxis)
	in.BindAxis(AxisTurnRate, c.TurnAtRate)
	in.BindAxis(AxisLookUp, c.LookUpAxis)
	in.BindAxis(AxisLookUpRate, c.LookUpAtRate)
}

// Tick is the per-frame hook. Input for the frame has already been
// dispatched when it runs.
func (c *Controller) Tick(dt float64) {}

// IsAiming reports the aim mode.
func (c *Controller) IsAiming() bool {
	return c.State.IsAiming
}

// MaxSpeed is the current movement max speed.
func (c *Controller) MaxSpeed() float64 {
	return c.Movement.MaxWalkSpeed
}

func (c *Controller) AimPress() {
	c.State.IsAiming = true
	c.Movement.OrientRotationToMovement = false
	c.Pawn.UseControllerRotationYaw = true
	c.State.CanRun = false
	c.logger.Debug("aim pressed", zap.Bool("can_run", c.State.CanRun))
}

func (c *Controller) AimRelease() {
	c.State.IsAiming = false
	c.Movement.OrientRotationToMovement = true
	c.Pawn.UseControllerRotationYaw = false
	c.State.CanRun = true
	c.logger.Debug("aim released", zap.Bool("can_run", c.State.CanRun))
}

func (c *Controller) RunPress() {
	if !c.State.CanRun {
		return
	}
	c.Movement.MaxWalkSpeed = c.State.RunSpeed
	c.logger.Debug("run pressed", zap.Float64("max_speed", c.Movement.MaxWalkSpeed))
}

// RunRelease always drops back to walk speed, even without a matching press.
func (c *Controller) RunRelease() {
	c.Movement.MaxWalkSpeed = c.State.WalkSpeed
	c.logger.Debug("run released", zap.Float64("max_speed", c.Movement.MaxWalkSpeed))
}

// CrouchPress is bound but has no effect; IsCrouching never changes.
func (c *Controller) CrouchPress() {}

func (c *Controller) CrouchRelease() {}

// FirePress is bound but has no effect.
func (c *Controller) FirePress() {}

func (c *Controller) FireRelease() {}

// Jump requests a jump from the movement component.
func (c *Controller) Jump() {
	c.Movement.JumpRequested = true
}

func (c *Controller) StopJumping() {
	c.Movement.JumpRequested = false
}

func (c *Controller) MoveForward(value float64) {
	if value == 0 {
		return
	}
	rot, ok := c.host.ControlRotation()
	if !ok {
		return
	}
	c.host.AddMovementInput(rot.YawOnly().Forward(), value)
}

func (c *Controller) MoveRight(value float64) {
	if value == 0 {
		return
	}
	rot, ok := c.host.ControlRotation()
	if !ok {
		return
	}
	c.host.AddMovementInput(rot.YawOnly().Right(), value)
}

// TurnAxis forwards a yaw delta as reported by the device.
func (c *Controller) TurnAxis(delta float64) {
	c.host.AddYawInput(delta)
}

// TurnAtRate scales a normalized rate (1.0 is the full base turn rate) by
// the frame time.
func (c *Controller) TurnAtRate(rate float64) {
	c.host.AddYawInput(rate * c.State.BaseTurnRate * c.host.DeltaSeconds())
}

func (c *Controller) LookUpAxis(delta float64) {
	c.host.AddPitchInput(delta)
}

func (c *Controller) LookUpAtRate(rate float64) {
	c.host.AddPitchInput(rate * c.State.BaseLookRate * c.host.DeltaSeconds())
}
