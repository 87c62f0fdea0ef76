package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

func TestClampLength(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		max  float64
		want float64
	}{
		{name: "zero", in: mgl64.Vec3{}, max: 1, want: 0},
		{name: "inside", in: mgl64.Vec3{0.3, 0.4, 0}, max: 1, want: 0.5},
		{name: "diagonal", in: mgl64.Vec3{1, 1, 0}, max: 1, want: 1},
		{name: "speed cap", in: mgl64.Vec3{750, 0, 0}, max: 300, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLength(tt.in, tt.max).Len(); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("len = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaneConversions(t *testing.T) {
	v := mgl64.Vec3{3, 4, 12}
	p := ToPlane(v)
	if p != (cp.Vector{X: 3, Y: 4}) {
		t.Fatalf("ToPlane = %v", p)
	}
	if got := FromPlane(p, 12); got != v {
		t.Fatalf("FromPlane = %v", got)
	}
	if PlaneLen(v) != 5 {
		t.Fatalf("PlaneLen = %v", PlaneLen(v))
	}
}
