package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/ecs/entity"
)

// PointerSource reports presses made since the last tick, in screen
// pixels.
type PointerSource interface {
	JustPressed() []cp.Vector
}

// HitTester finds the entity under a world point.
type HitTester interface {
	EntityAt(p cp.Vector) (ecs.Entity, bool)
}

// EbitenPointer reads left mouse button and touch presses.
type EbitenPointer struct {
	touches []ebiten.TouchID
}

func (p *EbitenPointer) JustPressed() []cp.Vector {
	var out []cp.Vector
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, cp.Vector{X: float64(x), Y: float64(y)})
	}
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		x, y := ebiten.TouchPosition(id)
		out = append(out, cp.Vector{X: float64(x), Y: float64(y)})
	}
	return out
}

// ClickSystem turns presses into reward attempts on the clicked sprite.
type ClickSystem struct {
	pointer PointerSource
	hits    HitTester
	rng     behavior.Rand
}

func NewClickSystem(pointer PointerSource, hits HitTester, rng behavior.Rand) *ClickSystem {
	return &ClickSystem{pointer: pointer, hits: hits, rng: rng}
}

func (c *ClickSystem) Update(w *ecs.World) {
	if w == nil || c.pointer == nil || c.hits == nil {
		return
	}
	presses := c.pointer.JustPressed()
	if len(presses) == 0 {
		return
	}
	if _, _, running := worldTime(w); !running {
		return
	}
	view, ok := entity.ActiveCamera(w)
	if !ok {
		return
	}

	for _, press := range presses {
		e, ok := c.hits.EntityAt(view.ScreenToWorld(press.X, press.Y))
		if !ok || !w.IsAlive(e) || !ecs.Has(w, e, component.ClickableComponent.Kind()) {
			continue
		}
		AttemptReward(w, e, c.rng)
	}
}

// AttemptReward is the click entry point for a sprite. A click while angry
// restarts the mood cycle and emits the sprite's reward signal exactly
// once; a click while happy does nothing. It reports whether the click was
// accepted.
func AttemptReward(w *ecs.World, e ecs.Entity, rng behavior.Rand) bool {
	mood, ok := ecs.Get(w, e, component.MoodComponent.Kind())
	if !ok {
		return false
	}
	ref, ok := ecs.Get(w, e, component.BehaviorRefComponent.Kind())
	if !ok || ref.Profile == nil {
		return false
	}
	now, _, _ := worldTime(w)
	if !mood.Click(now, ref.Profile, rng) {
		return false
	}

	applyMoodTint(w, e, mood.Mood(), ref.Profile)
	if signal, ok := ecs.Get(w, e, component.RewardSignalComponent.Kind()); ok {
		signal.Emit()
	}
	return true
}
