// Package deform implements the grid deformation core: surface generation,
// brush resolution, height integration with healing, and the stroke session
// that drives them once per tick.
package deform

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/deformo/internal/engine/picking"
	"github.com/Faultbox/deformo/pkg/math"
)

// GridConfig describes the rectangular grid. It is fixed once a surface has
// been built from it.
type GridConfig struct {
	Columns int
	Rows    int
	Spacing float32
}

// Validate checks the grid dimensions.
func (c GridConfig) Validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("%w: columns=%d rows=%d", ErrInvalidGrid, c.Columns, c.Rows)
	}
	if !(c.Spacing > 0) || gomath.IsInf(float64(c.Spacing), 0) {
		return fmt.Errorf("%w: spacing=%v", ErrInvalidGrid, c.Spacing)
	}
	return nil
}

// VertexCount returns Columns*Rows.
func (c GridConfig) VertexCount() int {
	return c.Columns * c.Rows
}

// TriangleCount returns the number of triangles the grid produces.
func (c GridConfig) TriangleCount() int {
	return (c.Columns - 1) * (c.Rows - 1) * 2
}

// BrushParams controls how strokes displace and how the surface heals.
type BrushParams struct {
	Radius      float32
	DeformSpeed float32 // height units per second
	MaxDepth    float32 // heights stay within [-MaxDepth, MaxDepth]
	HealingRate float32 // height units per second back toward zero

	InterpolationSegments int
	Interpolation         math.PathMode
}

// DefaultBrushParams returns the parameters used when nothing is configured.
func DefaultBrushParams() BrushParams {
	return BrushParams{
		Radius:                0.5,
		DeformSpeed:           1.0,
		MaxDepth:              1.0,
		HealingRate:           0.25,
		InterpolationSegments: 8,
		Interpolation:         math.PathSlerp,
	}
}

// Validate rejects negative or NaN parameters.
func (p BrushParams) Validate() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"radius", p.Radius},
		{"deform speed", p.DeformSpeed},
		{"max depth", p.MaxDepth},
		{"healing rate", p.HealingRate},
	}
	for _, f := range fields {
		if !(f.v >= 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidBrush, f.name, f.v)
		}
	}
	if p.InterpolationSegments < 0 {
		return fmt.Errorf("%w: interpolation segments=%d", ErrInvalidBrush, p.InterpolationSegments)
	}
	return nil
}

// Direction is the sign of displacement applied by a stroke.
type Direction int

const (
	Pull    Direction = -1
	Neutral Direction = 0
	Push    Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Push:
		return "push"
	case Pull:
		return "pull"
	default:
		return "neutral"
	}
}

// Trigger is the state of one logical input trigger for a tick.
// Pressed and Released are this tick's edges; Held is the level after them.
type Trigger struct {
	Held     bool
	Pressed  bool
	Released bool
}

// Edge reports whether the trigger changed state this tick.
func (t Trigger) Edge() bool {
	return t.Pressed || t.Released
}

// Input is everything the session needs from the host for one tick.
type Input struct {
	Push Trigger
	Pull Trigger
	Ray  picking.Ray
}

// HitTester finds where a pointer ray meets the scene.
type HitTester interface {
	HitTest(ray picking.Ray, radius float32, layers picking.LayerMask) (math.Vec3, bool)
}
