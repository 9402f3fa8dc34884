package meshdata

// Height ramp end colors. The "height" surface shader uses the same ramp.
var (
	LowColor  = [3]float32{0.15, 0.25, 0.6}
	HighColor = [3]float32{1, 1, 1}
)

// HeightColor blends albedo toward LowColor for negative heights and toward
// HighColor for positive ones, reaching the end color at ±maxDepth.
func HeightColor(h, maxDepth float32, albedo [3]float32) [3]float32 {
	if maxDepth <= 0 {
		return albedo
	}
	t := h / maxDepth
	t = max(-1, min(1, t))

	target := HighColor
	if t < 0 {
		target = LowColor
		t = -t
	}
	return [3]float32{
		albedo[0] + (target[0]-albedo[0])*t,
		albedo[1] + (target[1]-albedo[1])*t,
		albedo[2] + (target[2]-albedo[2])*t,
	}
}
