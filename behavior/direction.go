package behavior

import "github.com/jakecoffman/cp"

// DirectionEpsilon is the slack used when discarding directions that keep
// an out-of-bounds sprite drifting. Components within it count as drifting.
const DirectionEpsilon = 0.1

var (
	Right = cp.Vector{X: 1, Y: 0}
	Left  = cp.Vector{X: -1, Y: 0}
	Up    = cp.Vector{X: 0, Y: 1}
	Down  = cp.Vector{X: 0, Y: -1}

	UpRight   = cp.Vector{X: 1, Y: 1}.Normalize()
	DownLeft  = cp.Vector{X: -1, Y: -1}.Normalize()
	DownRight = cp.Vector{X: 1, Y: -1}.Normalize()
	UpLeft    = cp.Vector{X: -1, Y: 1}.Normalize()
)

// Directions selects which axes a sprite may move along.
type Directions struct {
	Horizontal bool
	Vertical   bool
	Diagonal   bool
}

// Catalogue lists the unit directions allowed by the flags.
func (d Directions) Catalogue() []cp.Vector {
	list := make([]cp.Vector, 0, 8)
	if d.Horizontal {
		list = append(list, Right, Left)
	}
	if d.Vertical {
		list = append(list, Up, Down)
	}
	if d.Diagonal {
		list = append(list, UpRight, DownLeft, DownRight, UpLeft)
	}
	return list
}

// Curate drops every direction that would push pos further outside view.
// The result may be empty.
func (d Directions) Curate(pos cp.Vector, view cp.BB) []cp.Vector {
	return curate(d.Catalogue(), pos, view)
}

func curate(catalogue []cp.Vector, pos cp.Vector, view cp.BB) []cp.Vector {
	out := make([]cp.Vector, 0, len(catalogue))
	for _, v := range catalogue {
		if pos.X < view.L && v.X < DirectionEpsilon {
			continue
		}
		if pos.X > view.R && v.X > -DirectionEpsilon {
			continue
		}
		if pos.Y < view.B && v.Y < DirectionEpsilon {
			continue
		}
		if pos.Y > view.T && v.Y > -DirectionEpsilon {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SelectDirection picks a random direction that does not worsen an
// out-of-bounds position. When every direction would, it picks from the
// whole catalogue instead. An empty catalogue yields the zero vector.
func SelectDirection(pos cp.Vector, view cp.BB, d Directions, r Rand) cp.Vector {
	return selectFrom(d.Catalogue(), pos, view, r)
}

func selectFrom(catalogue []cp.Vector, pos cp.Vector, view cp.BB, r Rand) cp.Vector {
	if len(catalogue) == 0 {
		return cp.Vector{}
	}

	candidates := curate(catalogue, pos, view)
	if len(candidates) == 0 {
		candidates = catalogue
	}
	if len(candidates) == 1 || r == nil {
		return candidates[0]
	}
	return candidates[r.IntN(len(candidates))]
}
