package behavior

import "github.com/jakecoffman/cp"

// NudgeDistance is how far a sprite is pushed along its new direction when
// it re-selects from outside the view, so the bounds check does not fire
// again on the very next tick.
const NudgeDistance = 0.1

// Wander is the per-entity state of the wander loop: move in Direction at
// Speed until the switch deadline passes or the sprite leaves the view.
type Wander struct {
	Direction cp.Vector
	Speed     float64

	switchAt float64
	started  bool
}

// WanderStep is the outcome of one wander update.
type WanderStep struct {
	Switched bool
	Velocity cp.Vector
	Nudge    cp.Vector
}

// Update re-selects a direction when due and returns the velocity to apply.
// view must be recomputed by the caller for every call.
func (w *Wander) Update(now float64, pos cp.Vector, view cp.BB, p *Profile, r Rand) WanderStep {
	inside := view.ContainsVect(pos)
	if w.started && now < w.switchAt && inside {
		return WanderStep{Velocity: w.Velocity()}
	}

	w.Direction = SelectDirection(pos, view, p.Directions, r)
	w.Speed = p.Speed.Get(r)
	w.switchAt = now + wait(p.DirectionSwitchInterval, r)
	w.started = true

	step := WanderStep{Switched: true, Velocity: w.Velocity()}
	if !inside {
		step.Nudge = w.Direction.Mult(NudgeDistance)
	}
	return step
}

func (w *Wander) Velocity() cp.Vector {
	return w.Direction.Mult(w.Speed)
}

// SwitchAt is the time of the next scheduled direction change.
func (w *Wander) SwitchAt() float64 {
	return w.switchAt
}
