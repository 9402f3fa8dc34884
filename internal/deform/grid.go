package deform

import (
	"github.com/Faultbox/deformo/pkg/math"
)

// Surface is a generated grid mesh and the state the renderer needs to
// upload it. Vertices are in local space; only their Z (height) changes
// after BuildSurface returns.
type Surface struct {
	config    GridConfig
	transform math.Transform
	layer     uint32

	vertices []math.Vec3
	indices  []uint32

	world      []math.Vec3
	worldStale bool
	dirty      bool
}

// BuildSurface generates the vertex and index buffers for cfg, centered on
// the transform's position. No surface is returned on error.
func BuildSurface(cfg GridConfig, t math.Transform, layer uint32) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Surface{
		config:     cfg,
		transform:  t,
		layer:      layer,
		vertices:   buildVertices(cfg, t),
		indices:    buildIndices(cfg),
		worldStale: true,
		dirty:      true,
	}
	return s, nil
}

// buildVertices lays vertices out row-major in the local XY plane.
func buildVertices(cfg GridConfig, t math.Transform) []math.Vec3 {
	halfExtent := math.Vec3{
		X: float32(cfg.Columns-1) * cfg.Spacing / 2,
		Y: float32(cfg.Rows-1) * cfg.Spacing / 2,
	}
	// The half extent is taken along the transform's own axes so a rotated
	// surface still starts with every height at zero.
	origin := t.InverseTransformPoint(t.Position.Add(t.Rotate(halfExtent.Scale(-1))))

	vertices := make([]math.Vec3, 0, cfg.VertexCount())
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			vertices = append(vertices, origin.Add(math.Vec3{
				X: float32(col) * cfg.Spacing,
				Y: float32(row) * cfg.Spacing,
			}))
		}
	}
	return vertices
}

// buildIndices emits two triangles per cell with a single winding:
// botLeft, topLeft, topRight then topRight, botRight, botLeft.
func buildIndices(cfg GridConfig) []uint32 {
	indices := make([]uint32, 0, cfg.TriangleCount()*3)
	cols := uint32(cfg.Columns)
	for row := 0; row < cfg.Rows-1; row++ {
		for col := 0; col < cfg.Columns-1; col++ {
			topLeft := uint32(row)*cols + uint32(col)
			topRight := topLeft + 1
			botLeft := topLeft + cols
			botRight := botLeft + 1

			indices = append(indices,
				botLeft, topLeft, topRight,
				topRight, botRight, botLeft,
			)
		}
	}
	return indices
}

// Config returns the grid the surface was built from.
func (s *Surface) Config() GridConfig { return s.config }

// Transform returns the owning transform.
func (s *Surface) Transform() math.Transform { return s.transform }

// Layer returns the collision layer used for hit-test filtering.
func (s *Surface) Layer() uint32 { return s.layer }

// Vertices returns the local-space vertex buffer. Callers must not modify it.
func (s *Surface) Vertices() []math.Vec3 { return s.vertices }

// Indices returns the triangle index buffer. Callers must not modify it.
func (s *Surface) Indices() []uint32 { return s.indices }

// Index returns the vertex index for (col, row).
func (s *Surface) Index(col, row int) int {
	return row*s.config.Columns + col
}

// Height returns the displacement of vertex i.
func (s *Surface) Height(i int) float32 {
	return s.vertices[i].Z
}

// setHeight writes the displacement of vertex i and marks the surface dirty
// when it actually changed.
func (s *Surface) setHeight(i int, h float32) bool {
	if s.vertices[i].Z == h {
		return false
	}
	s.vertices[i].Z = h
	s.dirty = true
	s.worldStale = true
	return true
}

// WorldVertices returns the vertex buffer transformed to world space. The
// result is cached until a height changes.
func (s *Surface) WorldVertices() []math.Vec3 {
	if !s.worldStale && len(s.world) == len(s.vertices) {
		return s.world
	}
	if cap(s.world) < len(s.vertices) {
		s.world = make([]math.Vec3, len(s.vertices))
	}
	s.world = s.world[:len(s.vertices)]
	for i, v := range s.vertices {
		s.world[i] = s.transform.TransformPoint(v)
	}
	s.worldStale = false
	return s.world
}

// Dirty reports whether any height changed since the last ClearDirty.
func (s *Surface) Dirty() bool { return s.dirty }

// ClearDirty acknowledges that the renderer has picked up the changes.
func (s *Surface) ClearDirty() { s.dirty = false }
