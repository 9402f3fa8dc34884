package meshdata

import (
	"testing"

	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/pkg/math"
)

func flatSurface(t *testing.T) *deform.Surface {
	t.Helper()
	s, err := deform.BuildSurface(deform.GridConfig{Columns: 4, Rows: 3, Spacing: 1}, math.IdentityTransform(), 0)
	if err != nil {
		t.Fatalf("BuildSurface: %v", err)
	}
	return s
}

func TestComputeNormalsFlatGridFacesZ(t *testing.T) {
	s := flatSurface(t)
	normals := ComputeNormals(s.Vertices(), s.Indices(), nil)

	if len(normals) != len(s.Vertices()) {
		t.Fatalf("normals = %d, want %d", len(normals), len(s.Vertices()))
	}
	for i, n := range normals {
		if n.Distance(math.Vec3{Z: 1}) > 1e-5 {
			t.Errorf("normal %d = %v, want (0, 0, 1)", i, n)
		}
	}
}

func TestComputeNormalsTiltsWithSlope(t *testing.T) {
	// A single quad raised along +X leans its normal toward -X.
	verts := []math.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1},
		{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1},
	}
	indices := []uint32{2, 0, 1, 1, 3, 2}

	for i, n := range ComputeNormals(verts, indices, nil) {
		if n.X >= 0 || n.Z <= 0 {
			t.Errorf("normal %d = %v, want leaning toward -X and up", i, n)
		}
	}
}

func TestComputeNormalsReusesBuffer(t *testing.T) {
	s := flatSurface(t)
	buf := make([]math.Vec3, 0, 64)
	out := ComputeNormals(s.Vertices(), s.Indices(), buf)
	if &out[0] != &buf[:1][0] {
		t.Error("ComputeNormals should reuse a large enough buffer")
	}
}

func TestComputeNormalsIsolatedVertex(t *testing.T) {
	normals := ComputeNormals([]math.Vec3{{X: 3}}, nil, nil)
	if normals[0] != (math.Vec3{Z: 1}) {
		t.Errorf("isolated vertex normal = %v, want (0, 0, 1)", normals[0])
	}
}

func TestComputeBounds(t *testing.T) {
	b := ComputeBounds([]math.Vec3{{X: 1, Y: -2, Z: 0.5}, {X: -3, Y: 4, Z: -1}, {X: 0, Y: 0, Z: 2}})

	if b.Min != (math.Vec3{X: -3, Y: -2, Z: -1}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (math.Vec3{X: 1, Y: 4, Z: 2}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Center() != (math.Vec3{X: -1, Y: 1, Z: 0.5}) {
		t.Errorf("Center = %v", b.Center())
	}
	if (ComputeBounds(nil) != Bounds{}) {
		t.Error("bounds of nothing should be zero")
	}
}

func TestInterleave(t *testing.T) {
	verts := []math.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: -6}}
	normals := []math.Vec3{{Z: 1}, {Y: 1}}

	got := Interleave(verts, normals, nil)
	want := []float32{
		1, 2, 3, 0, 0, 1, 3,
		4, 5, -6, 0, 1, 0, -6,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
