package debug

import (
	"testing"

	"github.com/Faultbox/deformo/pkg/math"
)

func pos(v LineVertex) math.Vec3 { return math.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

func TestBoundsWireframe(t *testing.T) {
	lines := BoundsWireframe(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}, 0.5, BoundsColor)
	if len(lines) != BBoxWireframeVertexCount {
		t.Fatalf("got %d vertices, want %d", len(lines), BBoxWireframeVertexCount)
	}
	for _, v := range lines {
		for _, c := range []float32{v.X, v.Y, v.Z} {
			if c != -0.5 && c != 1.5 {
				t.Fatalf("vertex %+v not on the padded box", v)
			}
		}
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([]LineVertex{{X: 1, Y: 2, Z: 3, R: 0.1, G: 0.2, B: 0.3}}, nil)
	want := []float32{1, 2, 3, 0.1, 0.2, 0.3}
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPathMarkers(t *testing.T) {
	path := []math.Vec3{{}, {X: 1}, {X: 2}}
	lines := PathMarkers(path, 0.1, PathColor)

	// Three crosses of 6 vertices plus two joining segments.
	if want := 3*6 + 2*2; len(lines) != want {
		t.Fatalf("got %d vertices, want %d", len(lines), want)
	}
	if PathMarkers(nil, 0.1, PathColor) != nil {
		t.Error("empty path should draw nothing")
	}
}

func TestBrushRingLiesOnCircle(t *testing.T) {
	center := math.Vec3{X: 1, Y: 2, Z: 3}
	normal := math.Vec3{Y: 1}
	lines := BrushRing(center, normal, 0.5, 16, PushColor)

	if len(lines) != 32 {
		t.Fatalf("got %d vertices, want 32", len(lines))
	}
	for _, v := range lines {
		p := pos(v)
		if d := p.Distance(center); d < 0.499 || d > 0.501 {
			t.Errorf("vertex %v at distance %v, want 0.5", p, d)
		}
		if off := p.Sub(center).Dot(normal); off > 1e-5 || off < -1e-5 {
			t.Errorf("vertex %v leaves the plane by %v", p, off)
		}
	}
}

func TestBrushRingDegenerate(t *testing.T) {
	if BrushRing(math.Vec3{}, math.Vec3{Y: 1}, 0, 16, PushColor) != nil {
		t.Error("zero radius should draw nothing")
	}
	if BrushRing(math.Vec3{}, math.Vec3{Y: 1}, 1, 2, PushColor) != nil {
		t.Error("fewer than three segments should draw nothing")
	}
}

func TestPlaneBasisOrthonormal(t *testing.T) {
	for _, n := range []math.Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}} {
		u, v := planeBasis(n)
		nn := n.Normalize()
		if abs(u.Dot(nn)) > 1e-5 || abs(v.Dot(nn)) > 1e-5 || abs(u.Dot(v)) > 1e-5 {
			t.Errorf("basis for %v not orthogonal: u=%v v=%v", n, u, v)
		}
		if abs(u.Length()-1) > 1e-5 || abs(v.Length()-1) > 1e-5 {
			t.Errorf("basis for %v not unit length", n)
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
