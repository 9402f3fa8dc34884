// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/deformo/pkg/math"
)

// LineVertex is one endpoint of a debug line, format [x, y, z, r, g, b].
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// FloatsPerLineVertex is the float count of a LineVertex.
const FloatsPerLineVertex = 6

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

func vertex(p math.Vec3, color [3]float32) LineVertex {
	return LineVertex{X: p.X, Y: p.Y, Z: p.Z, R: color[0], G: color[1], B: color[2]}
}

// BoundsWireframe creates line vertices for a wireframe box from lo to hi,
// grown by padding on every side.
func BoundsWireframe(lo, hi math.Vec3, padding float32, color [3]float32) []LineVertex {
	minX, minY, minZ := lo.X-padding, lo.Y-padding, lo.Z-padding
	maxX, maxY, maxZ := hi.X+padding, hi.Y+padding, hi.Z+padding

	corners := [][2]math.Vec3{
		// Bottom face (4 edges)
		{{X: minX, Y: minY, Z: minZ}, {X: maxX, Y: minY, Z: minZ}},
		{{X: maxX, Y: minY, Z: minZ}, {X: maxX, Y: minY, Z: maxZ}},
		{{X: maxX, Y: minY, Z: maxZ}, {X: minX, Y: minY, Z: maxZ}},
		{{X: minX, Y: minY, Z: maxZ}, {X: minX, Y: minY, Z: minZ}},
		// Top face (4 edges)
		{{X: minX, Y: maxY, Z: minZ}, {X: maxX, Y: maxY, Z: minZ}},
		{{X: maxX, Y: maxY, Z: minZ}, {X: maxX, Y: maxY, Z: maxZ}},
		{{X: maxX, Y: maxY, Z: maxZ}, {X: minX, Y: maxY, Z: maxZ}},
		{{X: minX, Y: maxY, Z: maxZ}, {X: minX, Y: maxY, Z: minZ}},
		// Vertical edges (4 edges)
		{{X: minX, Y: minY, Z: minZ}, {X: minX, Y: maxY, Z: minZ}},
		{{X: maxX, Y: minY, Z: minZ}, {X: maxX, Y: maxY, Z: minZ}},
		{{X: maxX, Y: minY, Z: maxZ}, {X: maxX, Y: maxY, Z: maxZ}},
		{{X: minX, Y: minY, Z: maxZ}, {X: minX, Y: maxY, Z: maxZ}},
	}

	out := make([]LineVertex, 0, BBoxWireframeVertexCount)
	for _, e := range corners {
		out = append(out, vertex(e[0], color), vertex(e[1], color))
	}
	return out
}

// Flatten packs line vertices for GPU upload, reusing dst when it is large
// enough.
func Flatten(lines []LineVertex, dst []float32) []float32 {
	n := len(lines) * FloatsPerLineVertex
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	for i, v := range lines {
		o := i * FloatsPerLineVertex
		dst[o+0], dst[o+1], dst[o+2] = v.X, v.Y, v.Z
		dst[o+3], dst[o+4], dst[o+5] = v.R, v.G, v.B
	}
	return dst
}
