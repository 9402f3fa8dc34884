package debug

import (
	gomath "math"

	"github.com/Faultbox/deformo/pkg/math"
)

// Overlay colors.
var (
	PathColor   = [3]float32{1, 0.9, 0.2}
	PushColor   = [3]float32{0.3, 1, 0.4}
	PullColor   = [3]float32{1, 0.35, 0.3}
	BoundsColor = [3]float32{0.4, 0.4, 0.45}
)

// PathMarkers draws a three-axis cross of the given half size at every path
// point, plus a polyline joining consecutive points.
func PathMarkers(path []math.Vec3, size float32, color [3]float32) []LineVertex {
	if len(path) == 0 {
		return nil
	}
	out := make([]LineVertex, 0, len(path)*6+(len(path)-1)*2)
	axes := [3]math.Vec3{{X: size}, {Y: size}, {Z: size}}
	for i, p := range path {
		for _, a := range axes {
			out = append(out, vertex(p.Sub(a), color), vertex(p.Add(a), color))
		}
		if i > 0 {
			out = append(out, vertex(path[i-1], color), vertex(p, color))
		}
	}
	return out
}

// BrushRing draws a circle of radius around center in the plane with the
// given normal.
func BrushRing(center, normal math.Vec3, radius float32, segments int, color [3]float32) []LineVertex {
	if segments < 3 || radius <= 0 {
		return nil
	}
	u, v := planeBasis(normal)

	point := func(i int) math.Vec3 {
		a := 2 * gomath.Pi * float64(i) / float64(segments)
		c, s := float32(gomath.Cos(a)), float32(gomath.Sin(a))
		return center.Add(u.Scale(c * radius)).Add(v.Scale(s * radius))
	}

	out := make([]LineVertex, 0, segments*2)
	prev := point(0)
	for i := 1; i <= segments; i++ {
		next := point(i)
		out = append(out, vertex(prev, color), vertex(next, color))
		prev = next
	}
	return out
}

// planeBasis returns two unit vectors spanning the plane orthogonal to n.
func planeBasis(n math.Vec3) (math.Vec3, math.Vec3) {
	n = n.Normalize()
	if n.LengthSq() == 0 {
		n = math.Vec3{Y: 1}
	}
	ref := math.Vec3{X: 1}
	if gomath.Abs(float64(n.X)) > 0.9 {
		ref = math.Vec3{Z: 1}
	}
	u := ref.Cross(n).Normalize()
	return u, n.Cross(u)
}
