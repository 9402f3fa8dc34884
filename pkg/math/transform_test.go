package math

import (
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	tr := IdentityTransform()
	p := Vec3{1.5, -2, 3}

	if got := tr.TransformPoint(p); got != p {
		t.Errorf("TransformPoint = %v, want %v", got, p)
	}
	if got := tr.InverseTransformPoint(p); got != p {
		t.Errorf("InverseTransformPoint = %v, want %v", got, p)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{
		Position: Vec3{10, -3, 2},
		Rotation: QuatFromEulerDegrees(-90, 30, 0),
		Scale:    Vec3{2, 2, 0.5},
	}
	p := Vec3{0.25, 4, -1}

	back := tr.InverseTransformPoint(tr.TransformPoint(p))
	if back.Distance(p) > 0.0001 {
		t.Errorf("round trip = %v, want %v", back, p)
	}
}

func TestTransformMatchesMatrix(t *testing.T) {
	tr := Transform{
		Position: Vec3{1, 2, 3},
		Rotation: QuatFromEulerDegrees(15, 75, -20),
		Scale:    Vec3{1, 3, 2},
	}
	p := Vec3{-1, 0.5, 2}

	direct := tr.TransformPoint(p)
	viaMatrix := tr.Matrix().TransformPoint(p)
	if direct.Distance(viaMatrix) > 0.0001 {
		t.Errorf("TransformPoint = %v, Matrix = %v", direct, viaMatrix)
	}
}

func TestTransformRotateIgnoresPositionAndScale(t *testing.T) {
	tr := Transform{
		Position: Vec3{5, 5, 5},
		Rotation: QuatFromEulerDegrees(-90, 0, 0),
		Scale:    Vec3{3, 3, 3},
	}
	if got := tr.Rotate(Vec3{Z: 1}); got.Distance(Vec3{Y: 1}) > 0.0001 {
		t.Errorf("Rotate(+Z) = %v, want +Y", got)
	}
	if got := IdentityTransform().Rotate(Vec3{1, 2, 3}); got != (Vec3{1, 2, 3}) {
		t.Errorf("identity Rotate = %v", got)
	}
}
