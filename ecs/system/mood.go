package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// MoodSystem advances every mood cycle and tints sprites with the profile
// color of their current mood.
type MoodSystem struct {
	rng behavior.Rand
}

func NewMoodSystem(rng behavior.Rand) *MoodSystem {
	return &MoodSystem{rng: rng}
}

func (s *MoodSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now, _, running := worldTime(w)
	if !running {
		return
	}

	ecs.ForEach2(w, component.MoodComponent.Kind(), component.BehaviorRefComponent.Kind(), func(e ecs.Entity, mood *behavior.MoodCycle, ref *component.BehaviorRef) {
		if ref.Profile == nil {
			return
		}
		if mood.Advance(now, ref.Profile, s.rng) {
			log.Debug("mood: changed", "entity", e, "mood", mood.Mood(), "t", now)
		}
		applyMoodTint(w, e, mood.Mood(), ref.Profile)
	})
}

func applyMoodTint(w *ecs.World, e ecs.Entity, m behavior.Mood, p *behavior.Profile) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	sprite.Tint = p.Color(m)
}
