// Package geom holds the rotation math shared by the character, controller
// and camera boom. Angles are degrees; the frame is Z-up with X forward and
// Y right.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator is a pitch/yaw/roll orientation in degrees.
type Rotator struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// YawOnly drops pitch and roll.
func (r Rotator) YawOnly() Rotator {
	return Rotator{Yaw: r.Yaw}
}

// Matrix returns the rotation matrix for r (roll, then pitch, then yaw).
func (r Rotator) Matrix() mgl64.Mat3 {
	yaw := mgl64.Rotate3DZ(mgl64.DegToRad(r.Yaw))
	// positive pitch looks up, which is a negative rotation about Y
	pitch := mgl64.Rotate3DY(-mgl64.DegToRad(r.Pitch))
	roll := mgl64.Rotate3DX(mgl64.DegToRad(r.Roll))
	return yaw.Mul3(pitch).Mul3(roll)
}

// Forward is the unit X axis of r.
func (r Rotator) Forward() mgl64.Vec3 {
	return r.Matrix().Col(0)
}

// Right is the unit Y axis of r.
func (r Rotator) Right() mgl64.Vec3 {
	return r.Matrix().Col(1)
}

// Normalized wraps every component to (-180, 180].
func (r Rotator) Normalized() Rotator {
	return Rotator{
		Pitch: NormalizeAxis(r.Pitch),
		Yaw:   NormalizeAxis(r.Yaw),
		Roll:  NormalizeAxis(r.Roll),
	}
}

// ClampPitch limits pitch to [min, max].
func (r Rotator) ClampPitch(min, max float64) Rotator {
	r.Pitch = mgl64.Clamp(NormalizeAxis(r.Pitch), min, max)
	return r
}

// NormalizeAxis wraps an angle to (-180, 180].
func NormalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// YawFromDirection returns the yaw of a horizontal direction.
func YawFromDirection(x, y float64) float64 {
	return mgl64.RadToDeg(math.Atan2(y, x))
}

// StepYawToward moves current toward target by at most maxStep degrees along
// the shortest arc.
func StepYawToward(current, target, maxStep float64) float64 {
	delta := NormalizeAxis(target - current)
	if math.Abs(delta) <= maxStep {
		return NormalizeAxis(target)
	}
	if delta < 0 {
		maxStep = -maxStep
	}
	return NormalizeAxis(current + maxStep)
}
