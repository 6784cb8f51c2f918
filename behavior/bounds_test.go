package behavior

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestComputeViewBounds(t *testing.T) {
	cases := []struct {
		name    string
		ortho   float64
		aspect  float64
		center  cp.Vector
		margins cp.Vector
		want    cp.BB
	}{
		{
			name:   "square_no_margin",
			ortho:  5,
			aspect: 1,
			want:   cp.BB{L: -5, B: -5, R: 5, T: 5},
		},
		{
			name:    "wide_with_margins",
			ortho:   5,
			aspect:  2,
			center:  cp.Vector{X: 1, Y: 2},
			margins: cp.Vector{X: 1, Y: 0.5},
			want:    cp.BB{L: -8, B: -2.5, R: 10, T: 6.5},
		},
		{
			name:    "margins_larger_than_view",
			ortho:   1,
			aspect:  1,
			center:  cp.Vector{X: 3, Y: 3},
			margins: cp.Vector{X: 4, Y: 4},
			want:    cp.BB{L: 3, B: 3, R: 3, T: 3},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeViewBounds(c.ortho, c.aspect, c.center, c.margins)
			if !bbNear(got, c.want) {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func bbNear(a, b cp.BB) bool {
	const eps = 1e-9
	return math.Abs(a.L-b.L) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.R-b.R) < eps && math.Abs(a.T-b.T) < eps
}
