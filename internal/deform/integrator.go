package deform

import (
	"fmt"
	gomath "math"
)

// Integrator applies one tick of displacement and healing to a surface.
type Integrator struct {
	params BrushParams
}

// NewIntegrator creates an integrator using params.
func NewIntegrator(params BrushParams) *Integrator {
	return &Integrator{params: params}
}

// SetParams replaces the brush parameters used by later steps.
func (in *Integrator) SetParams(params BrushParams) {
	in.params = params
}

// Step displaces every brushed vertex by dir*DeformSpeed*dt, clamped to
// [-MaxDepth, MaxDepth], and heals every other vertex toward zero by
// HealingRate*dt without crossing it. A vertex is never both displaced and
// healed in the same step. Negative or non-finite dt counts as zero. It
// reports whether any height changed.
func (in *Integrator) Step(s *Surface, brushed *VertexSet, dir Direction, dt float32) (bool, error) {
	if !(dt > 0) || gomath.IsInf(float64(dt), 1) {
		dt = 0
	}
	n := len(s.vertices)
	if brushed.Capacity() != n {
		return false, fmt.Errorf("%w: set sized %d for %d vertices", ErrVertexOutOfRange, brushed.Capacity(), n)
	}

	changed := false
	maxDepth := in.params.MaxDepth

	delta := float32(dir) * in.params.DeformSpeed * dt
	for _, i := range brushed.Indices() {
		if i < 0 || i >= n {
			return changed, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, i, n)
		}
		h := clamp(s.vertices[i].Z+delta, -maxDepth, maxDepth)
		if s.setHeight(i, h) {
			changed = true
		}
	}

	heal := in.params.HealingRate * dt
	if heal <= 0 {
		return changed, nil
	}
	for i := range s.vertices {
		h := s.vertices[i].Z
		if h == 0 || brushed.Contains(i) {
			continue
		}
		if s.setHeight(i, healToward0(h, heal)) {
			changed = true
		}
	}

	return changed, nil
}

// healToward0 moves h toward zero by step, stopping at zero.
func healToward0(h, step float32) float32 {
	if h > 0 {
		if h <= step {
			return 0
		}
		return h - step
	}
	if -h <= step {
		return 0
	}
	return h + step
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
