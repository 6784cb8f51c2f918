package system

import (
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// TTLSystem decrements frame-based TTL components and destroys entities when
// the TTL reaches zero. Paused ticks do not count.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, _, running := worldTime(w); !running {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames > 1 {
			ttl.Frames--
			return
		}
		ecs.DestroyEntity(w, e)
	})
}
