package picking

import (
	"testing"

	"github.com/Faultbox/deformo/pkg/math"
)

func near(a, b math.Vec3) bool {
	return a.Distance(b) < 1e-4
}

func TestIntersectTriangle(t *testing.T) {
	a := math.Vec3{X: -1, Y: -1}
	b := math.Vec3{X: 1, Y: -1}
	c := math.Vec3{X: 0, Y: 1}

	ray := NewRay(math.Vec3{Z: 5}, math.Vec3{Z: -1})
	dist, hit := ray.IntersectTriangle(a, b, c)
	if !hit {
		t.Fatal("ray through the triangle should hit")
	}
	if abs(dist-5) > 1e-5 {
		t.Errorf("t = %v, want 5", dist)
	}

	// Back faces count too.
	back := NewRay(math.Vec3{Z: -5}, math.Vec3{Z: 1})
	if _, hit := back.IntersectTriangle(a, b, c); !hit {
		t.Error("ray from behind should still hit")
	}

	miss := NewRay(math.Vec3{X: 3, Z: 5}, math.Vec3{Z: -1})
	if _, hit := miss.IntersectTriangle(a, b, c); hit {
		t.Error("ray beside the triangle should miss")
	}

	away := NewRay(math.Vec3{Z: 5}, math.Vec3{Z: 1})
	if _, hit := away.IntersectTriangle(a, b, c); hit {
		t.Error("triangle behind the origin should not count")
	}
}

func TestIntersectPlane(t *testing.T) {
	ray := NewRay(math.Vec3{Y: 10}, math.Vec3{Y: -2})
	dist, ok := ray.IntersectPlane(math.Vec3{}, math.Vec3{Y: 1})
	if !ok || abs(dist-10) > 1e-5 {
		t.Errorf("IntersectPlane = (%v, %v), want (10, true)", dist, ok)
	}

	parallel := NewRay(math.Vec3{Y: 10}, math.Vec3{X: 1})
	if _, ok := parallel.IntersectPlane(math.Vec3{}, math.Vec3{Y: 1}); ok {
		t.Error("parallel ray should not intersect")
	}
}

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	ray := NewRay(math.Vec3{X: -5}, math.Vec3{X: 1})
	dist, hit := ray.IntersectAABB(box)
	if !hit || abs(dist-4) > 1e-5 {
		t.Errorf("entry = (%v, %v), want (4, true)", dist, hit)
	}

	inside := NewRay(math.Vec3{}, math.Vec3{X: 1})
	dist, hit = inside.IntersectAABB(box)
	if !hit || abs(dist-1) > 1e-5 {
		t.Errorf("exit = (%v, %v), want (1, true)", dist, hit)
	}

	miss := NewRay(math.Vec3{X: -5, Y: 3}, math.Vec3{X: 1})
	if _, hit := miss.IntersectAABB(box); hit {
		t.Error("ray above the box should miss")
	}
}

func TestBoundsOfAndExpand(t *testing.T) {
	box := BoundsOf([]math.Vec3{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 5}})
	if box.Min != (math.Vec3{X: -1, Y: 0, Z: 3}) || box.Max != (math.Vec3{X: 1, Y: 2, Z: 5}) {
		t.Errorf("BoundsOf = %+v", box)
	}

	grown := box.Expand(0.5)
	if grown.Min != (math.Vec3{X: -1.5, Y: -0.5, Z: 2.5}) || grown.Max != (math.Vec3{X: 1.5, Y: 2.5, Z: 5.5}) {
		t.Errorf("Expand = %+v", grown)
	}
}

func TestScreenToRayCenter(t *testing.T) {
	eye := math.Vec3{Y: 5, Z: 5}
	view := math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(1.0, 1.0, 0.1, 100)
	inv, ok := proj.Mul(view).Inverse()
	if !ok {
		t.Fatal("view-projection should be invertible")
	}

	ray := ScreenToRay(400, 400, 800, 800, inv)

	want := math.Vec3{}.Sub(eye).Normalize()
	if !near(ray.Direction, want) {
		t.Errorf("direction = %v, want %v", ray.Direction, want)
	}
	dist, ok := ray.IntersectPlane(math.Vec3{}, math.Vec3{Y: 1})
	if !ok || !near(ray.At(dist), math.Vec3{}) {
		t.Errorf("center ray lands at %v, want origin", ray.At(dist))
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
