package heartbloom

import "github.com/go-gl/mathgl/mgl64"

// Transform is the rigid-body transform applied to the whole particle field
// at render time. Particle buffers are never rotated or scaled in place.
type Transform struct {
	// RotationX and RotationY are Euler angles in radians.
	RotationX, RotationY float64
	// Scale is the uniform scale factor.
	Scale float64
}

// identityFieldTransform is the transform of a field that has not moved.
var identityFieldTransform = Transform{Scale: 1}

// Matrix returns the model matrix for t.
//
// Composition order (XYZ Euler, then scale):
//
//	Rx(RotationX) * Ry(RotationY) * Scale
func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(t.RotationX).
		Mul4(mgl64.HomogRotate3DY(t.RotationY)).
		Mul4(mgl64.Scale3D(t.Scale, t.Scale, t.Scale))
}

// Apply transforms a single field-space point into world space.
func (t Transform) Apply(x, y, z float64) (float64, float64, float64) {
	v := t.Matrix().Mul4x1(mgl64.Vec4{x, y, z, 1})
	return v[0], v[1], v[2]
}
