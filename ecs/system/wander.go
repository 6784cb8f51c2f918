package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/ecs/entity"
)

// WanderSystem runs each sprite's wander loop and hands the resulting
// velocity to the physics body. View bounds are recomputed for every
// sprite on every tick.
type WanderSystem struct {
	rng behavior.Rand
}

func NewWanderSystem(rng behavior.Rand) *WanderSystem {
	return &WanderSystem{rng: rng}
}

func (s *WanderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now, _, running := worldTime(w)
	if !running {
		return
	}
	view, ok := entity.ActiveCamera(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.WanderComponent.Kind(), component.BehaviorRefComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, wander *behavior.Wander, ref *component.BehaviorRef, t *component.Transform) {
		if ref.Profile == nil {
			return
		}
		pos := cp.Vector{X: t.X, Y: t.Y}
		step := wander.Update(now, pos, view.Bounds(ref.Profile.OnscreenMargins), ref.Profile, s.rng)

		body, hasBody := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if hasBody {
			body.Velocity = step.Velocity
		}
		if step.Nudge.X == 0 && step.Nudge.Y == 0 {
			return
		}
		t.X += step.Nudge.X
		t.Y += step.Nudge.Y
		if hasBody && body.Body != nil {
			body.Body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		}
	})
}
