package math

// Transform places an object in the world: scale, then rotation, then
// translation.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// IdentityTransform returns a transform at the origin with no rotation and
// unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() Mat4 {
	return Translate(t.Position).
		Mul(t.Rotation.ToMat4()).
		Mul(ScaleMat(t.Scale))
}

// TransformPoint maps a local-space point to world space.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Rotate(p.Mul(t.Scale)).Add(t.Position)
}

// Rotate applies only the rotation to a direction.
func (t Transform) Rotate(d Vec3) Vec3 {
	if t.Rotation.IsIdentity() {
		return d
	}
	return t.Rotation.Normalize().Rotate(d)
}

// InverseTransformPoint maps a world-space point to local space.
// Zero scale components map to zero.
func (t Transform) InverseTransformPoint(p Vec3) Vec3 {
	local := p.Sub(t.Position)
	if !t.Rotation.IsIdentity() {
		local = t.Rotation.Normalize().Conjugate().Rotate(local)
	}
	return Vec3{
		X: safeDiv(local.X, t.Scale.X),
		Y: safeDiv(local.Y, t.Scale.Y),
		Z: safeDiv(local.Z, t.Scale.Z),
	}
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
