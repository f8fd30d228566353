package dodeca

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DegenerateEpsilon bounds the sine of a triangle's corner angle below which
// it is treated as having zero area. Relative to the edge lengths, so it
// holds at any mesh scale.
const DegenerateEpsilon = 1e-12

// Normalize returns v scaled to unit length. Unlike mgl64.Vec3.Normalize the
// zero vector is returned unchanged instead of turning into NaNs.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	length := v.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / length)
}

// FaceNormal returns the unit normal of triangle (a, b, c) by the right-hand
// rule, and false when the triangle has no area.
func FaceNormal(a, b, c mgl64.Vec3) (mgl64.Vec3, bool) {
	e1, e2 := b.Sub(a), c.Sub(a)
	n := e1.Cross(e2)
	length := n.Len()
	if math.IsNaN(length) || length == 0 || length <= DegenerateEpsilon*e1.Len()*e2.Len() {
		return mgl64.Vec3{}, false
	}
	return n.Mul(1 / length), true
}

// IsUnit reports whether v has length 1 within eps.
func IsUnit(v mgl64.Vec3, eps float64) bool {
	return math.Abs(v.Len()-1) <= eps
}
