package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// Scorer is the shared score aggregator. The spawner subscribes Award to
// every sprite's reward signal.
type Scorer struct {
	script *ScoreScript
}

// NewScorer returns a scorer using script for points; a nil script awards
// one point per reward.
func NewScorer(script *ScoreScript) *Scorer {
	return &Scorer{script: script}
}

// Award adds the points for one reward from e to the score counter and
// announces it with an EventReward.
func (s *Scorer) Award(w *ecs.World, e ecs.Entity) {
	counterEnt, ok := w.First(component.ScoreCounterComponent.Kind())
	if !ok {
		log.Warn("score: no score counter", "entity", e)
		return
	}
	counter, _ := ecs.Get(w, counterEnt, component.ScoreCounterComponent.Kind())

	rewards := counter.Rewards + 1
	points, err := s.script.Points(counter.Total, rewards, counter.Profile)
	if err != nil {
		log.Error("score: script failed, awarding 1", "error", err)
		points = 1
	}
	counter.Total += points
	counter.Rewards = rewards

	evt := ecs.RewardEvent{Entity: e, Points: points}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		evt.X, evt.Y = t.X, t.Y
	}
	w.Events().Push(ecs.Event{Type: ecs.EventReward, Data: evt})

	log.Info("score: reward", "entity", e, "points", points, "total", counter.Total)
}

// Total returns the current score, or zero without a counter.
func Total(w *ecs.World) int {
	e, ok := w.First(component.ScoreCounterComponent.Kind())
	if !ok {
		return 0
	}
	counter, _ := ecs.Get(w, e, component.ScoreCounterComponent.Kind())
	return counter.Total
}
