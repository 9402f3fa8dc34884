package deform

import (
	"github.com/Faultbox/deformo/pkg/math"
)

// ResolveBrush fills out with every vertex within radius of the stroke.
//
// Without a previous hit each path point is tested as a sphere. With one,
// each path point is joined to the previous hit and vertices are tested
// against that segment, so a fast pointer cannot skip over vertices between
// two ticks. out is reset first; world holds world-space vertex positions.
func ResolveBrush(path []math.Vec3, prev math.OptVec3, radius float32, world []math.Vec3, out *VertexSet) {
	out.Reset()
	if len(path) == 0 {
		return
	}

	anchor, hasAnchor := prev.Get()
	for _, point := range path {
		for i, v := range world {
			if out.Contains(i) {
				continue
			}

			var d float32
			if hasAnchor {
				d = math.DistancePointToSegment(v, anchor, point)
			} else {
				d = v.Distance(point)
			}
			if d <= radius {
				out.Add(i)
			}
		}
	}
}
