package behavior

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ComputeViewBounds returns the playable rectangle seen by an orthographic
// camera. orthoSize is half the vertical extent in world units and aspect is
// width over height. Each axis is shrunk by twice its margin.
func ComputeViewBounds(orthoSize, aspect float64, center, margins cp.Vector) cp.BB {
	height := orthoSize * 2
	width := height * aspect

	hw := math.Max(0, (width-2*margins.X)/2)
	hh := math.Max(0, (height-2*margins.Y)/2)

	return cp.BB{
		L: center.X - hw,
		B: center.Y - hh,
		R: center.X + hw,
		T: center.Y + hh,
	}
}
