package scene

import "github.com/go-gl/mathgl/mgl64"

var (
	// SpinAxis is the diagonal axis the solid turns about; it is normalized
	// before use like any rotation axis.
	SpinAxis = mgl64.Vec3{1, 1, 0}
	// VerticalAxis carries the second, slower rotation.
	VerticalAxis = mgl64.Vec3{0, 1, 0}
)

// ModelMatrix rotates by rotation degrees about SpinAxis after rotating by
// vertical degrees about VerticalAxis.
func ModelMatrix(rotation, vertical float64) mgl64.Mat4 {
	spin := mgl64.HomogRotate3D(mgl64.DegToRad(rotation), SpinAxis.Normalize())
	up := mgl64.HomogRotate3D(mgl64.DegToRad(vertical), VerticalAxis)
	return spin.Mul4(up)
}

// TransformPoint applies m, translation included, to p.
func TransformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, m)
}

// TransformNormal applies only the 3x3 rotation part of m to n. Valid for
// rotations and uniform scales.
func TransformNormal(m mgl64.Mat4, n mgl64.Vec3) mgl64.Vec3 {
	r := m.Mat3().Mul3x1(n)
	if l := r.Len(); l > 0 {
		return r.Mul(1 / l)
	}
	return r
}
