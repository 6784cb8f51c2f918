package system

import (
	"github.com/milk9111/moodsprites/common"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// ExplosionSystem grows explosions and removes them once they reach their
// end size.
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, dt, running := worldTime(w)
	if !running {
		return
	}

	ecs.ForEach2(w, component.ExplosionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ex *component.Explosion, t *component.Transform) {
		ex.T = common.Clamp01(ex.T + ex.Speed*dt)
		scale := common.Lerp(ex.StartScale, ex.EndScale, ex.T)
		t.ScaleX = scale
		t.ScaleY = scale

		if ex.T >= 1 || (ex.EndScale > ex.StartScale && scale*scale >= ex.EndScale*ex.EndScale) {
			ecs.DestroyEntity(w, e)
		}
	})
}
