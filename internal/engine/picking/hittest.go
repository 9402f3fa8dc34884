package picking

import (
	"github.com/Faultbox/deformo/pkg/math"
)

// LayerMask selects collision layers, one bit per layer (0-31).
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = 0xFFFFFFFF

// LayerMaskOf builds a mask from layer numbers. Layers outside 0-31 are ignored.
func LayerMaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < 32 {
			m |= 1 << uint(l)
		}
	}
	return m
}

// Includes reports whether layer is selected by the mask.
func (m LayerMask) Includes(layer uint32) bool {
	return layer < 32 && m&(1<<layer) != 0
}

// Geometry is a triangle surface in world space.
type Geometry interface {
	WorldVertices() []math.Vec3
	Indices() []uint32
	Layer() uint32
}

// SurfaceHitTester casts rays against whatever Geometry its source returns.
// The source is consulted on every call so a rebuilt surface is picked up
// without rebinding.
//
// Only triangles can be hit. A grid with a single column or row has none, so
// every ray misses it.
type SurfaceHitTester struct {
	source func() Geometry
}

// NewSurfaceHitTester creates a hit tester reading geometry from source.
func NewSurfaceHitTester(source func() Geometry) *SurfaceHitTester {
	return &SurfaceHitTester{source: source}
}

// HitTest returns the nearest point where ray meets the surface. radius
// inflates the broadphase bounds; layers filters the surface out entirely.
func (h *SurfaceHitTester) HitTest(ray Ray, radius float32, layers LayerMask) (math.Vec3, bool) {
	if h.source == nil {
		return math.Vec3{}, false
	}
	geom := h.source()
	if geom == nil || !layers.Includes(geom.Layer()) {
		return math.Vec3{}, false
	}

	verts := geom.WorldVertices()
	if _, hit := ray.IntersectAABB(BoundsOf(verts).Expand(radius)); !hit {
		return math.Vec3{}, false
	}

	indices := geom.Indices()
	best := float32(-1)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(verts) || int(b) >= len(verts) || int(c) >= len(verts) {
			continue
		}
		t, hit := ray.IntersectTriangle(verts[a], verts[b], verts[c])
		if hit && (best < 0 || t < best) {
			best = t
		}
	}

	if best < 0 {
		return math.Vec3{}, false
	}
	return ray.At(best), true
}
