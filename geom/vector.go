package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// ToPlane drops the height of v.
func ToPlane(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Y()}
}

// FromPlane lifts a plane vector to height z.
func FromPlane(p cp.Vector, z float64) mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, z}
}

// ClampLength scales v down so its length is at most max.
func ClampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// PlaneLen is the horizontal length of v.
func PlaneLen(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Y())
}
