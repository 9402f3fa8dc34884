package camera

import (
	"testing"

	"github.com/Faultbox/deformo/pkg/math"
)

func TestPositionAboveCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}

	p := c.Position()
	if p.Y <= c.Center.Y {
		t.Errorf("camera at %v should be above center %v", p, c.Center)
	}
	if d := p.Distance(c.Center); d-c.Distance > 1e-3 || c.Distance-d > 1e-3 {
		t.Errorf("distance = %v, want %v", d, c.Distance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %v, want %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch = %v, want %v", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(math.Vec3{X: -4, Z: -2}, math.Vec3{X: 4, Y: 1, Z: 2})

	if c.Center != (math.Vec3{Y: 0.5}) {
		t.Errorf("center = %v", c.Center)
	}
	if c.Distance < 8 {
		t.Errorf("distance = %v, should cover the 8 unit span", c.Distance)
	}
}

func TestPointerRayThroughCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 2, Z: -1}

	ray := c.PointerRay(320, 240, 640, 480)
	dist, ok := ray.IntersectPlane(math.Vec3{}, math.Vec3{Y: 1})
	if !ok {
		t.Fatal("center ray should reach the ground plane")
	}
	if got := ray.At(dist); got.Distance(c.Center) > 1e-2 {
		t.Errorf("center ray lands at %v, want %v", got, c.Center)
	}
}

func TestPointerRayEmptyViewport(t *testing.T) {
	c := NewOrbitCamera()
	ray := c.PointerRay(0, 0, 0, 0)
	if ray.Origin != c.Position() {
		t.Errorf("origin = %v, want camera position", ray.Origin)
	}
}
