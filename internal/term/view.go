package term

import (
	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/internal/engine/picking"
	"github.com/Faultbox/deformo/pkg/math"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2

// View maps terminal cells onto the surface's local grid plane, looking
// down the height axis. Screen rows grow toward local -Y.
type View struct {
	Width, Height int // cells

	centerX, centerY float32 // local plane point under the view center
	unit             float32 // local units per cell column
}

// NewView fits the surface into width x height cells, leaving statusRows
// rows free at the bottom.
func NewView(width, height, statusRows int, s *deform.Surface) View {
	v := View{Width: width, Height: max(height-statusRows, 0)}
	if v.Width <= 0 || v.Height <= 0 {
		return v
	}

	cfg := s.Config()
	spanX := float32(cfg.Columns-1) * cfg.Spacing
	spanY := float32(cfg.Rows-1) * cfg.Spacing

	origin := s.Vertices()[0]
	v.centerX = origin.X + spanX/2
	v.centerY = origin.Y + spanY/2

	v.unit = max(spanX/float32(v.Width), spanY/float32(v.Height*cellAspect))
	if v.unit <= 0 {
		v.unit = cfg.Spacing
	}
	return v
}

// Contains reports whether (cx, cy) is inside the drawing area.
func (v View) Contains(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < v.Width && cy < v.Height
}

// CellToLocal returns the local plane point at the center of cell (cx, cy).
func (v View) CellToLocal(cx, cy int) (x, y float32) {
	x = v.centerX + (float32(cx)+0.5-float32(v.Width)/2)*v.unit
	y = v.centerY - (float32(cy)+0.5-float32(v.Height)/2)*v.unit*cellAspect
	return x, y
}

// PointerRay returns a world-space ray that starts above the surface at
// cell (cx, cy) and travels down the height axis.
func (v View) PointerRay(cx, cy int, s *deform.Surface, maxDepth float32) picking.Ray {
	x, y := v.CellToLocal(cx, cy)
	t := s.Transform()
	origin := t.TransformPoint(math.Vec3{X: x, Y: y, Z: maxDepth + 1})
	down := t.Rotate(math.Vec3{Z: -1})
	return picking.NewRay(origin, down)
}

// SampleHeight bilinearly interpolates the surface height at local (x, y).
// ok is false outside the grid.
func SampleHeight(s *deform.Surface, x, y float32) (h float32, ok bool) {
	cfg := s.Config()
	origin := s.Vertices()[0]

	fx := (x - origin.X) / cfg.Spacing
	fy := (y - origin.Y) / cfg.Spacing
	maxX := float32(cfg.Columns - 1)
	maxY := float32(cfg.Rows - 1)
	if fx < 0 || fy < 0 || fx > maxX || fy > maxY {
		return 0, false
	}

	c0, r0 := int(fx), int(fy)
	c1, r1 := min(c0+1, cfg.Columns-1), min(r0+1, cfg.Rows-1)
	tx, ty := fx-float32(c0), fy-float32(r0)

	h00 := s.Height(s.Index(c0, r0))
	h10 := s.Height(s.Index(c1, r0))
	h01 := s.Height(s.Index(c0, r1))
	h11 := s.Height(s.Index(c1, r1))

	top := h00 + (h10-h00)*tx
	bottom := h01 + (h11-h01)*tx
	return top + (bottom-top)*ty, true
}
