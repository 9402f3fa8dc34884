package math

import (
	"fmt"
	"strings"
)

// PathMode selects how InterpolatePath blends between two hit points.
type PathMode int

const (
	// PathSlerp interpolates spherically about the origin.
	PathSlerp PathMode = iota
	// PathLerp interpolates along the straight segment.
	PathLerp
)

// String returns the config spelling of the mode.
func (m PathMode) String() string {
	switch m {
	case PathLerp:
		return "lerp"
	default:
		return "slerp"
	}
}

// ParsePathMode parses "slerp" or "lerp" (case-insensitive). Empty means slerp.
func ParsePathMode(s string) (PathMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "slerp":
		return PathSlerp, nil
	case "lerp":
		return PathLerp, nil
	}
	return PathSlerp, fmt.Errorf("unknown interpolation mode %q", s)
}

// DistancePointToSegment returns the distance from p to the closest point on
// segment ab. A degenerate segment (a == b) degrades to the distance to a.
func DistancePointToSegment(p, a, b Vec3) float32 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := a.Add(ab.Scale(t))
	return p.Distance(closest)
}

// InterpolatePath returns the points a brush sweeps between the previous and
// the current hit. Without a previous hit the path is just [current].
// Otherwise it holds segments samples at t = i/segments for i in [0, segments)
// followed by current itself, so the exact current point is always last.
func InterpolatePath(prev OptVec3, current Vec3, segments int, mode PathMode) []Vec3 {
	from, ok := prev.Get()
	if !ok || segments <= 0 {
		return []Vec3{current}
	}

	path := make([]Vec3, 0, segments+1)
	for i := 0; i < segments; i++ {
		t := float32(i) / float32(segments)
		if mode == PathLerp {
			path = append(path, from.Lerp(current, t))
		} else {
			path = append(path, from.Slerp(current, t))
		}
	}
	return append(path, current)
}
