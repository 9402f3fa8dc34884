package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/deformo/internal/engine/meshdata"
)

// heightColor converts a height to a terminal true color.
func heightColor(h, maxDepth float32, albedo [3]float32) tcell.Color {
	c := meshdata.HeightColor(h, maxDepth, albedo)
	return tcell.NewRGBColor(channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float32) int32 {
	return int32(max(0, min(255, v*255+0.5)))
}
