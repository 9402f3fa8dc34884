// Package meshdata prepares deformed surface data for GPU upload: vertex
// normals, bounds and the interleaved vertex layout.
package meshdata

import (
	"github.com/Faultbox/deformo/pkg/math"
)

// FloatsPerVertex is the interleaved layout: position (3), normal (3),
// height (1).
const FloatsPerVertex = 7

// Stride is the byte size of one interleaved vertex.
const Stride = FloatsPerVertex * 4

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// ComputeBounds returns the box enclosing vertices.
func ComputeBounds(vertices []math.Vec3) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, p := range vertices[1:] {
		updateBounds(&b, p)
	}
	return b
}

func updateBounds(b *Bounds, p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// ComputeNormals returns smooth per-vertex normals: each triangle adds its
// area-weighted face normal to its three corners, then every sum is
// normalized. Vertices touched by no triangle get +Z. dst is reused when it
// is large enough.
func ComputeNormals(vertices []math.Vec3, indices []uint32, dst []math.Vec3) []math.Vec3 {
	if cap(dst) < len(vertices) {
		dst = make([]math.Vec3, len(vertices))
	}
	dst = dst[:len(vertices)]
	for i := range dst {
		dst[i] = math.Vec3{}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		face := vertices[b].Sub(vertices[a]).Cross(vertices[c].Sub(vertices[a]))
		dst[a] = dst[a].Add(face)
		dst[b] = dst[b].Add(face)
		dst[c] = dst[c].Add(face)
	}

	for i, n := range dst {
		if n.LengthSq() < 1e-12 {
			dst[i] = math.Vec3{Z: 1}
			continue
		}
		dst[i] = n.Normalize()
	}
	return dst
}

// Interleave packs vertices and normals into the GPU layout. The height
// attribute is the local Z of each vertex. dst is reused when large enough.
func Interleave(vertices, normals []math.Vec3, dst []float32) []float32 {
	n := len(vertices) * FloatsPerVertex
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]

	for i, v := range vertices {
		o := i * FloatsPerVertex
		nrm := normals[i]
		dst[o+0] = v.X
		dst[o+1] = v.Y
		dst[o+2] = v.Z
		dst[o+3] = nrm.X
		dst[o+4] = nrm.Y
		dst[o+5] = nrm.Z
		dst[o+6] = v.Z
	}
	return dst
}
