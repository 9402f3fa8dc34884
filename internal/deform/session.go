package deform

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deformo/internal/engine/picking"
	"github.com/Faultbox/deformo/pkg/math"
)

// State is the stroke session state.
type State int

const (
	Idle State = iota
	Stroking
)

func (s State) String() string {
	if s == Stroking {
		return "stroking"
	}
	return "idle"
}

// StrokeState is the memory a stroke carries between ticks.
type StrokeState struct {
	Active    bool
	LastHit   math.OptVec3
	Direction Direction
}

// TickResult reports what a tick did. Brushed and Path are owned by the
// caller.
type TickResult struct {
	State     State
	Direction Direction
	Hit       math.OptVec3
	Brushed   []int
	Path      []math.Vec3
	Changed   bool
}

// Session owns one surface and turns per-tick input into deformation.
type Session struct {
	surface    *Surface
	params     BrushParams
	hitTester  HitTester
	hitLayers  picking.LayerMask
	integrator *Integrator
	brushed    *VertexSet
	stroke     StrokeState
	log        *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for stroke lifecycle messages.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHitLayers restricts hit tests to the given layers.
func WithHitLayers(m picking.LayerMask) Option {
	return func(s *Session) { s.hitLayers = m }
}

// NewSession binds a surface, brush parameters and hit tester. Every
// collaborator is required; nothing ticks until they are all present.
func NewSession(surface *Surface, params BrushParams, hitTester HitTester, opts ...Option) (*Session, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: surface", ErrMissingCollaborator)
	}
	if hitTester == nil {
		return nil, fmt.Errorf("%w: hit tester", ErrMissingCollaborator)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		surface:    surface,
		params:     params,
		hitTester:  hitTester,
		hitLayers:  picking.AllLayers,
		integrator: NewIntegrator(params),
		brushed:    NewVertexSet(len(surface.vertices)),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log.Debug("session ready",
		zap.Int("columns", surface.config.Columns),
		zap.Int("rows", surface.config.Rows),
		zap.Float32("radius", params.Radius),
	)
	return s, nil
}

// Surface returns the current surface. It changes after Reinitialize.
func (s *Session) Surface() *Surface { return s.surface }

// Geometry returns the current surface as hit-testable geometry.
func (s *Session) Geometry() picking.Geometry { return s.surface }

// Params returns the active brush parameters.
func (s *Session) Params() BrushParams { return s.params }

// Stroke returns a copy of the stroke memory.
func (s *Session) Stroke() StrokeState { return s.stroke }

// State returns Stroking while any trigger is held.
func (s *Session) State() State {
	if s.stroke.Active {
		return Stroking
	}
	return Idle
}

// SetParams swaps the brush parameters. Existing heights are clamped to the
// new MaxDepth.
func (s *Session) SetParams(params BrushParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	s.params = params
	s.integrator.SetParams(params)
	for i := range s.surface.vertices {
		s.surface.setHeight(i, clamp(s.surface.vertices[i].Z, -params.MaxDepth, params.MaxDepth))
	}
	return nil
}

// Reinitialize rebuilds the surface from cfg, replacing the old buffers
// wholesale and forgetting any stroke in progress. On error the current
// surface is kept.
func (s *Session) Reinitialize(cfg GridConfig) error {
	surface, err := BuildSurface(cfg, s.surface.transform, s.surface.layer)
	if err != nil {
		return err
	}
	s.surface = surface
	s.brushed.Resize(len(surface.vertices))
	s.stroke = StrokeState{}

	s.log.Debug("surface rebuilt",
		zap.Int("columns", cfg.Columns),
		zap.Int("rows", cfg.Rows),
		zap.Float32("spacing", cfg.Spacing),
	)
	return nil
}

// Tick advances the session by dt seconds.
//
// A tick whose ray misses the surface keeps the stroke active but forgets the
// last hit, so a stroke that leaves the surface and comes back starts a new
// path instead of interpolating across the gap.
func (s *Session) Tick(dt float32, in Input) (TickResult, error) {
	wasActive := s.stroke.Active
	active := in.Push.Held || in.Pull.Held

	// Any edge ends the previous stroke segment; a new stroke never
	// interpolates from a point recorded before the button changed.
	if in.Push.Edge() || in.Pull.Edge() {
		s.stroke.LastHit = math.None()
	}
	s.stroke.Active = active
	s.stroke.Direction = resolveDirection(in.Push.Held, in.Pull.Held)

	if active != wasActive {
		s.log.Debug("stroke state changed",
			zap.Stringer("state", s.State()),
			zap.Stringer("direction", s.stroke.Direction),
		)
	}

	result := TickResult{State: s.State(), Direction: s.stroke.Direction}
	s.brushed.Reset()

	if active {
		if hit, ok := s.hitTester.HitTest(in.Ray, s.params.Radius, s.hitLayers); ok {
			prev := s.stroke.LastHit
			result.Path = math.InterpolatePath(prev, hit, s.params.InterpolationSegments, s.params.Interpolation)
			ResolveBrush(result.Path, prev, s.params.Radius, s.surface.WorldVertices(), s.brushed)
			s.stroke.LastHit = math.Some(hit)
			result.Hit = math.Some(hit)
		} else {
			s.stroke.LastHit = math.None()
		}
	}

	changed, err := s.integrator.Step(s.surface, s.brushed, s.stroke.Direction, dt)
	if err != nil {
		return result, fmt.Errorf("integrate: %w", err)
	}
	result.Changed = changed
	if n := s.brushed.Len(); n > 0 {
		result.Brushed = append(make([]int, 0, n), s.brushed.Indices()...)
	}
	return result, nil
}

// resolveDirection cancels simultaneous opposite commands.
func resolveDirection(push, pull bool) Direction {
	switch {
	case push && !pull:
		return Push
	case pull && !push:
		return Pull
	default:
		return Neutral
	}
}
