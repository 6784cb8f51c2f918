package entity

import (
	"fmt"

	"github.com/milk9111/moodsprites/assets"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/prefabs"
)

const explosionLayer = 10

// NewExplosion spawns a burst at (x, y) growing from StartSize to EndSize.
func NewExplosion(w *ecs.World, spec prefabs.ExplosionSpec, x, y float64) (ecs.Entity, error) {
	if spec.Speed <= 0 {
		return 0, fmt.Errorf("explosion: speed must be positive, got %v", spec.Speed)
	}

	e := ecs.CreateEntity(w)
	if err := addExplosion(w, e, spec, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

func addExplosion(w *ecs.World, e ecs.Entity, spec prefabs.ExplosionSpec, x, y float64) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: spec.StartSize,
		ScaleY: spec.StartSize,
	}); err != nil {
		return fmt.Errorf("explosion: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ExplosionComponent.Kind(), &component.Explosion{
		StartScale: spec.StartSize,
		EndScale:   spec.EndSize,
		Speed:      spec.Speed,
	}); err != nil {
		return fmt.Errorf("explosion: add explosion: %w", err)
	}
	if spec.MaxFrames > 0 {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.MaxFrames}); err != nil {
			return fmt.Errorf("explosion: add ttl: %w", err)
		}
	}

	if spec.Image == "" {
		return nil
	}
	img, err := assets.LoadImage(spec.Image)
	if err != nil {
		return fmt.Errorf("explosion: load image %q: %w", spec.Image, err)
	}
	sprite := &component.Sprite{Image: img, Size: spec.Size}
	if spec.Color != nil {
		sprite.Tint = spec.Color.Color
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return fmt.Errorf("explosion: add sprite: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: explosionLayer})
}
