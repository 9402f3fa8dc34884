// Package scene wires a deform.Session to its hit tester from configuration
// and builds the debug overlay for each tick. Both frontends drive a Scene.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deformo/internal/config"
	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/internal/engine/debug"
	"github.com/Faultbox/deformo/internal/engine/meshdata"
	"github.com/Faultbox/deformo/internal/engine/picking"
	"github.com/Faultbox/deformo/pkg/math"
)

// Radius bounds for interactive adjustment.
const (
	MinRadius = 0.05
	MaxRadius = 10
)

// Scene owns the session and everything needed to feed it.
type Scene struct {
	session   *deform.Session
	hitTester *picking.SurfaceHitTester
	grid      deform.GridConfig
	last      deform.TickResult
	log       *zap.Logger
}

// New builds the surface, hit tester and session described by cfg.
func New(cfg *config.Config, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	params, err := cfg.BrushParams()
	if err != nil {
		return nil, err
	}

	grid := cfg.GridConfig()
	surface, err := deform.BuildSurface(grid, cfg.Transform(), uint32(cfg.Surface.Layer))
	if err != nil {
		return nil, fmt.Errorf("build surface: %w", err)
	}

	s := &Scene{grid: grid, log: log}
	s.hitTester = picking.NewSurfaceHitTester(func() picking.Geometry {
		return s.session.Geometry()
	})
	s.session, err = deform.NewSession(surface, params, s.hitTester,
		deform.WithLogger(log),
		deform.WithHitLayers(cfg.HitLayers()),
	)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	log.Info("scene ready",
		zap.Int("columns", grid.Columns),
		zap.Int("rows", grid.Rows),
		zap.Int("vertices", grid.VertexCount()),
		zap.Stringer("interpolation", params.Interpolation),
	)
	return s, nil
}

// Session returns the stroke session.
func (s *Scene) Session() *deform.Session { return s.session }

// Surface returns the current surface.
func (s *Scene) Surface() *deform.Surface { return s.session.Surface() }

// Last returns the result of the most recent tick.
func (s *Scene) Last() deform.TickResult { return s.last }

// Tick advances the session and remembers the result for the overlay.
func (s *Scene) Tick(dt float32, in deform.Input) (deform.TickResult, error) {
	res, err := s.session.Tick(dt, in)
	if err != nil {
		return res, err
	}
	s.last = res
	return res, nil
}

// Rebuild resets the surface to rest at the current grid size.
func (s *Scene) Rebuild() error {
	return s.reinitialize(s.grid)
}

// Resize grows or shrinks the grid by delta columns and rows.
func (s *Scene) Resize(delta int) error {
	g := s.grid
	g.Columns += delta
	g.Rows += delta
	return s.reinitialize(g)
}

func (s *Scene) reinitialize(g deform.GridConfig) error {
	if err := s.session.Reinitialize(g); err != nil {
		return err
	}
	s.grid = g
	s.last = deform.TickResult{}
	s.log.Info("surface rebuilt", zap.Int("columns", g.Columns), zap.Int("rows", g.Rows))
	return nil
}

// ScaleRadius multiplies the brush radius by factor, kept within
// [MinRadius, MaxRadius], and returns the new radius.
func (s *Scene) ScaleRadius(factor float32) (float32, error) {
	p := s.session.Params()
	p.Radius = max(MinRadius, min(MaxRadius, p.Radius*factor))
	if err := s.session.SetParams(p); err != nil {
		return 0, err
	}
	return p.Radius, nil
}

// Normal returns the world-space direction heights move along.
func (s *Scene) Normal() math.Vec3 {
	return s.Surface().Transform().Rotate(math.Vec3{Z: 1}).Normalize()
}

// Bounds returns the world-space bounds of the surface with heights at
// ±MaxDepth, so the camera can frame the full deformation range.
func (s *Scene) Bounds() meshdata.Bounds {
	b := meshdata.ComputeBounds(s.Surface().WorldVertices())
	reach := s.Normal().Scale(s.session.Params().MaxDepth)
	return meshdata.ComputeBounds([]math.Vec3{
		b.Min.Add(reach), b.Min.Sub(reach),
		b.Max.Add(reach), b.Max.Sub(reach),
	})
}

// OverlayOptions selects what Overlay draws.
type OverlayOptions struct {
	ShowPath   bool
	ShowBrush  bool
	ShowBounds bool
}

// Overlay returns debug lines for the last tick: the interpolated path, a
// ring of the brush radius at the hit point and the surface bounds.
func (s *Scene) Overlay(opts OverlayOptions) []debug.LineVertex {
	var lines []debug.LineVertex
	radius := s.session.Params().Radius

	if opts.ShowPath && len(s.last.Path) > 0 {
		lines = append(lines, debug.PathMarkers(s.last.Path, radius*0.15, debug.PathColor)...)
	}
	if opts.ShowBrush {
		if hit, ok := s.last.Hit.Get(); ok {
			color := debug.PushColor
			if s.last.Direction == deform.Pull {
				color = debug.PullColor
			}
			lines = append(lines, debug.BrushRing(hit, s.Normal(), radius, 32, color)...)
		}
	}
	if opts.ShowBounds {
		b := meshdata.ComputeBounds(s.Surface().WorldVertices())
		lines = append(lines, debug.BoundsWireframe(b.Min, b.Max, 0, debug.BoundsColor)...)
	}
	return lines
}
