package system

import (
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// ClockSystem advances the world clock by one fixed step per tick unless it
// is paused. It must run before every system that reads the time.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		if clock.Paused {
			return
		}
		clock.Now += clock.DT
		clock.Ticks++
	})
}

// worldTime returns the current time and step. running is false when there
// is no clock or it is paused, in which case time-driven systems skip the
// tick.
func worldTime(w *ecs.World) (now, dt float64, running bool) {
	e, ok := w.First(component.ClockComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	clock, _ := ecs.Get(w, e, component.ClockComponent.Kind())
	if clock.Paused {
		return clock.Now, 0, false
	}
	return clock.Now, clock.DT, true
}

// SetPaused stops or resumes the world clock.
func SetPaused(w *ecs.World, paused bool) {
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.Paused = paused
	})
}
