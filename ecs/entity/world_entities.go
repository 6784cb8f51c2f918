package entity

import (
	"fmt"

	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// NewClock creates the world clock stepping dt seconds per tick.
func NewClock(w *ecs.World, dt float64) (ecs.Entity, error) {
	if dt <= 0 {
		return 0, fmt.Errorf("clock: dt must be positive, got %v", dt)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{DT: dt}); err != nil {
		return 0, fmt.Errorf("clock: add clock: %w", err)
	}
	return e, nil
}

// NewScoreCounter creates the shared score aggregator.
func NewScoreCounter(w *ecs.World, prefix, profile string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ScoreCounterComponent.Kind(), &component.ScoreCounter{
		Prefix:  prefix,
		Profile: profile,
	}); err != nil {
		return 0, fmt.Errorf("score counter: add counter: %w", err)
	}
	return e, nil
}
