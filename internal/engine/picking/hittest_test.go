package picking

import (
	"testing"

	"github.com/Faultbox/deformo/pkg/math"
)

type quad struct {
	verts []math.Vec3
	layer uint32
}

func (q *quad) WorldVertices() []math.Vec3 { return q.verts }
func (q *quad) Indices() []uint32          { return []uint32{0, 1, 2, 2, 3, 0} }
func (q *quad) Layer() uint32              { return q.layer }

// flatQuad is a unit square in the XZ plane at height y.
func flatQuad(y float32, layer uint32) *quad {
	return &quad{
		verts: []math.Vec3{
			{X: -1, Y: y, Z: -1}, {X: 1, Y: y, Z: -1},
			{X: 1, Y: y, Z: 1}, {X: -1, Y: y, Z: 1},
		},
		layer: layer,
	}
}

func TestHitTestReturnsSurfacePoint(t *testing.T) {
	q := flatQuad(0, 0)
	h := NewSurfaceHitTester(func() Geometry { return q })

	ray := NewRay(math.Vec3{X: 0.25, Y: 10, Z: -0.5}, math.Vec3{Y: -1})
	p, ok := h.HitTest(ray, 0, AllLayers)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !near(p, math.Vec3{X: 0.25, Z: -0.5}) {
		t.Errorf("hit = %v, want (0.25, 0, -0.5)", p)
	}
}

func TestHitTestMiss(t *testing.T) {
	q := flatQuad(0, 0)
	h := NewSurfaceHitTester(func() Geometry { return q })

	ray := NewRay(math.Vec3{X: 5, Y: 10}, math.Vec3{Y: -1})
	if _, ok := h.HitTest(ray, 0.5, AllLayers); ok {
		t.Error("ray outside the surface should miss")
	}
}

// strip is a single row of vertices with no triangles.
type strip struct{ verts []math.Vec3 }

func (s *strip) WorldVertices() []math.Vec3 { return s.verts }
func (s *strip) Indices() []uint32          { return nil }
func (s *strip) Layer() uint32              { return 0 }

func TestHitTestWithoutTrianglesMisses(t *testing.T) {
	row := &strip{verts: []math.Vec3{{X: -1}, {X: 0}, {X: 1}}}
	h := NewSurfaceHitTester(func() Geometry { return row })

	// The ray passes straight through a vertex and inside the broadphase.
	ray := NewRay(math.Vec3{Y: 10}, math.Vec3{Y: -1})
	if _, ok := h.HitTest(ray, 0.5, AllLayers); ok {
		t.Error("geometry without triangles should never be hit")
	}
}

func TestHitTestLayerFilter(t *testing.T) {
	q := flatQuad(0, 3)
	h := NewSurfaceHitTester(func() Geometry { return q })
	ray := NewRay(math.Vec3{Y: 10}, math.Vec3{Y: -1})

	if _, ok := h.HitTest(ray, 0, LayerMaskOf(0, 1)); ok {
		t.Error("surface on layer 3 should be filtered out")
	}
	if _, ok := h.HitTest(ray, 0, LayerMaskOf(3)); !ok {
		t.Error("surface on layer 3 should be hit with layer 3 selected")
	}
}

func TestHitTestFollowsSource(t *testing.T) {
	current := flatQuad(0, 0)
	h := NewSurfaceHitTester(func() Geometry { return current })
	ray := NewRay(math.Vec3{Y: 10}, math.Vec3{Y: -1})

	current = flatQuad(2, 0)
	p, ok := h.HitTest(ray, 0, AllLayers)
	if !ok || abs(p.Y-2) > 1e-5 {
		t.Errorf("hit = (%v, %v), want the replaced surface at y=2", p, ok)
	}
}

func TestHitTestNilSource(t *testing.T) {
	h := NewSurfaceHitTester(nil)
	if _, ok := h.HitTest(NewRay(math.Vec3{}, math.Vec3{Y: -1}), 0, AllLayers); ok {
		t.Error("nil source should never hit")
	}
}

func TestLayerMask(t *testing.T) {
	m := LayerMaskOf(0, 5, 40, -1)
	if m != (1 | 1<<5) {
		t.Errorf("LayerMaskOf = %b", m)
	}
	if !m.Includes(5) || m.Includes(4) || m.Includes(40) {
		t.Error("Includes mismatch")
	}
	if !AllLayers.Includes(31) {
		t.Error("AllLayers should include 31")
	}
}
