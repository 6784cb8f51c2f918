package entity

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// RewardFunc receives every accepted click of a spawned sprite.
type RewardFunc func(w *ecs.World, e ecs.Entity)

// SpawnSprites builds n sprites from prefab, places each at a random point
// inside the current view bounds and subscribes onReward to its reward
// signal. Already spawned sprites are destroyed if a later one fails.
func SpawnSprites(w *ecs.World, prefab string, n int, opts BuildOptions, r behavior.Rand, onReward RewardFunc) ([]ecs.Entity, error) {
	if n < 0 {
		return nil, fmt.Errorf("spawn: count must not be negative, got %d", n)
	}
	if opts.Profiles == nil {
		opts.Profiles = NewProfileCache()
	}

	spawned := make([]ecs.Entity, 0, n)
	fail := func(err error) ([]ecs.Entity, error) {
		for _, e := range spawned {
			ecs.DestroyEntity(w, e)
		}
		return nil, err
	}

	for i := 0; i < n; i++ {
		e, err := BuildEntity(w, prefab, opts)
		if err != nil {
			return fail(fmt.Errorf("spawn: sprite %d: %w", i, err))
		}
		spawned = append(spawned, e)

		pos := spawnPoint(w, e, r)
		if err := SetEntityPosition(w, e, pos.X, pos.Y); err != nil {
			return fail(fmt.Errorf("spawn: sprite %d: place: %w", i, err))
		}

		if onReward != nil {
			if signal, ok := ecs.Get(w, e, component.RewardSignalComponent.Kind()); ok {
				sprite := e
				signal.Subscribe(func() { onReward(w, sprite) })
			}
		}

		log.Debug("spawn: sprite", "entity", e, "x", pos.X, "y", pos.Y)
	}

	return spawned, nil
}

// spawnPoint samples a point inside the sprite's view bounds, or returns
// the camera center when the bounds are degenerate.
func spawnPoint(w *ecs.World, e ecs.Entity, r behavior.Rand) cp.Vector {
	view, ok := ActiveCamera(w)
	if !ok {
		return cp.Vector{}
	}

	margins := cp.Vector{}
	if ref, ok := ecs.Get(w, e, component.BehaviorRefComponent.Kind()); ok && ref.Profile != nil {
		margins = ref.Profile.OnscreenMargins
	}
	bb := view.Bounds(margins)
	if r == nil || bb.R <= bb.L || bb.T <= bb.B {
		return view.Center
	}
	return cp.Vector{
		X: bb.L + r.Float64()*(bb.R-bb.L),
		Y: bb.B + r.Float64()*(bb.T-bb.B),
	}
}

// CameraView is the state needed to compute play-area bounds.
type CameraView struct {
	Center           cp.Vector
	OrthographicSize float64
	Aspect           float64
	ScreenWidth      float64
	ScreenHeight     float64
}

// Bounds computes the view rectangle shrunk by margins. It is never cached
// because the camera and window can change between calls.
func (v CameraView) Bounds(margins cp.Vector) cp.BB {
	return behavior.ComputeViewBounds(v.OrthographicSize, v.Aspect, v.Center, margins)
}

// scale is screen pixels per world unit. The full orthographic height
// always fills the screen height.
func (v CameraView) scale() float64 {
	if v.OrthographicSize <= 0 || v.ScreenHeight <= 0 {
		return 0
	}
	return v.ScreenHeight / (2 * v.OrthographicSize)
}

// ScreenToWorld converts a screen pixel (y down) to world units (y up).
func (v CameraView) ScreenToWorld(sx, sy float64) cp.Vector {
	s := v.scale()
	if s == 0 {
		return v.Center
	}
	return cp.Vector{
		X: v.Center.X + (sx-v.ScreenWidth/2)/s,
		Y: v.Center.Y - (sy-v.ScreenHeight/2)/s,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func (v CameraView) WorldToScreen(p cp.Vector) (float64, float64) {
	s := v.scale()
	return v.ScreenWidth/2 + (p.X-v.Center.X)*s, v.ScreenHeight/2 - (p.Y-v.Center.Y)*s
}

// PixelsPerWorldUnit is the current render scale.
func (v CameraView) PixelsPerWorldUnit() float64 {
	return v.scale()
}

// ActiveCamera returns the first camera in the world.
func ActiveCamera(w *ecs.World) (CameraView, bool) {
	e, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return CameraView{}, false
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	view := CameraView{
		OrthographicSize: cam.OrthographicSize,
		Aspect:           cam.Aspect,
		ScreenWidth:      cam.ScreenWidth,
		ScreenHeight:     cam.ScreenHeight,
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		view.Center = cp.Vector{X: t.X, Y: t.Y}
	}
	return view, true
}
