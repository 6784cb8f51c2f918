package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/ecs/entity"
	"github.com/milk9111/moodsprites/prefabs"
)

const rewardClip = "pop"

// EffectsSystem reacts to rewards counted this tick with an explosion at
// the sprite and a pop sound.
type EffectsSystem struct {
	explosion prefabs.ExplosionSpec
}

func NewEffectsSystem(explosion prefabs.ExplosionSpec) *EffectsSystem {
	return &EffectsSystem{explosion: explosion}
}

func (s *EffectsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Events().Each(ecs.EventReward, func(evt ecs.Event) {
		reward, ok := evt.Data.(ecs.RewardEvent)
		if !ok {
			return
		}
		if _, err := entity.NewExplosion(w, s.explosion, reward.X, reward.Y); err != nil {
			log.Error("effects: explosion", "error", err)
		}
		if a, ok := ecs.Get(w, reward.Entity, component.AudioComponent.Kind()); ok {
			a.Request(rewardClip)
		}
	})
}
