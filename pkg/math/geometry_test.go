package math

import (
	"testing"
)

func TestDistancePointToSegment(t *testing.T) {
	tests := []struct {
		name string
		p    Vec3
		a, b Vec3
		want float32
	}{
		{"perpendicular to middle", Vec3{5, 3, 0}, Vec3{0, 0, 0}, Vec3{10, 0, 0}, 3},
		{"beyond b clamps to b", Vec3{13, 4, 0}, Vec3{0, 0, 0}, Vec3{10, 0, 0}, 5},
		{"before a clamps to a", Vec3{-3, 0, 4}, Vec3{0, 0, 0}, Vec3{10, 0, 0}, 5},
		{"on the segment", Vec3{2, 0, 0}, Vec3{0, 0, 0}, Vec3{10, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistancePointToSegment(tt.p, tt.a, tt.b)
			if abs(got-tt.want) > 0.0001 {
				t.Errorf("DistancePointToSegment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistancePointToDegenerateSegment(t *testing.T) {
	p := Vec3{1, 2, 2}
	a := Vec3{-1, 0.5, 3}

	got := DistancePointToSegment(p, a, a)
	want := p.Distance(a)
	if got != want {
		t.Errorf("DistancePointToSegment(p, a, a) = %v, want %v", got, want)
	}
}

func TestInterpolatePathWithoutPrevious(t *testing.T) {
	p := Vec3{1, 2, 3}
	path := InterpolatePath(None(), p, 4, PathSlerp)

	if len(path) != 1 || path[0] != p {
		t.Errorf("InterpolatePath(None, p, 4) = %v, want [%v]", path, p)
	}
}

func TestInterpolatePathEndsAtCurrent(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0.3, 0.7, 0.11}

	for _, mode := range []PathMode{PathSlerp, PathLerp} {
		path := InterpolatePath(Some(a), b, 4, mode)
		if len(path) != 5 {
			t.Fatalf("%v: len = %d, want 5", mode, len(path))
		}
		if path[4] != b {
			t.Errorf("%v: last = %v, want exactly %v", mode, path[4], b)
		}
		if path[0].Distance(a) > 0.0001 {
			t.Errorf("%v: first = %v, want %v", mode, path[0], a)
		}
	}
}

func TestInterpolatePathLerpSpacing(t *testing.T) {
	path := InterpolatePath(Some(Vec3{0, 0, 0}), Vec3{8, 0, 0}, 4, PathLerp)
	want := []Vec3{{0, 0, 0}, {2, 0, 0}, {4, 0, 0}, {6, 0, 0}, {8, 0, 0}}

	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestInterpolatePathZeroSegments(t *testing.T) {
	b := Vec3{4, 4, 4}
	path := InterpolatePath(Some(Vec3{}), b, 0, PathSlerp)
	if len(path) != 1 || path[0] != b {
		t.Errorf("InterpolatePath with 0 segments = %v, want [%v]", path, b)
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{"": PathSlerp, "slerp": PathSlerp, "LERP": PathLerp} {
		got, err := ParsePathMode(in)
		if err != nil || got != want {
			t.Errorf("ParsePathMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParsePathMode("cubic"); err == nil {
		t.Error("ParsePathMode(cubic) should fail")
	}
}
