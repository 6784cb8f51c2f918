package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/moodsprites/assets"
	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/prefabs"
)

// BuildOptions controls how a prefab is turned into an entity.
type BuildOptions struct {
	// Profiles shares loaded behavior profiles between entities. A nil
	// cache loads a private copy per entity.
	Profiles *ProfileCache
	// Profile replaces the behavior profile named by the prefab.
	Profile string
}

type buildContext struct {
	PrefabPath string
	Options    BuildOptions
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"sprite_tag":    addSpriteTag,
	"camera_tag":    addCameraTag,
	"transform":     addTransform,
	"sprite":        addSprite,
	"render_layer":  addRenderLayer,
	"physics_body":  addPhysicsBody,
	"behavior":      addBehavior,
	"wander":        addWander,
	"mood":          addMood,
	"clickable":     addClickable,
	"reward_signal": addRewardSignal,
	"audio":         addAudio,
}

// behavior must precede wander and mood, which are only valid with a
// profile attached.
var componentBuildOrder = []string{
	"sprite_tag",
	"camera_tag",
	"transform",
	"sprite",
	"render_layer",
	"physics_body",
	"behavior",
	"wander",
	"mood",
	"clickable",
	"reward_signal",
	"audio",
}

func BuildEntity(w *ecs.World, prefabPath string, opts BuildOptions) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Options: opts}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	if len(remaining) > 0 {
		unknown := make([]string, 0, len(remaining))
		for name := range remaining {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	for _, name := range names {
		builder := componentRegistry[name]
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityPosition(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addSpriteTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SpriteTagComponent.Kind(), &component.SpriteTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addClickable(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ClickableComponent.Kind(), &component.Clickable{})
}

func addRewardSignal(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.RewardSignalComponent.Kind(), &component.RewardSignal{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
		Size:    spec.Size,
	}
	if spec.Image != "" {
		img, err := assets.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}
	if spec.AngryImage != "" {
		img, err := assets.LoadImage(spec.AngryImage)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.AngryImage, err)
		}
		sprite.AngryImage = img
	}
	if spec.Tint != nil {
		sprite.Tint = spec.Tint.Color
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius < 0 {
		return fmt.Errorf("physics body radius must not be negative, got %v", spec.Radius)
	}
	if spec.Radius == 0 {
		spec.Radius = 0.5
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: spec.Radius})
}

type behaviorSpec = prefabs.BehaviorComponentSpec

func addBehavior(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[behaviorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode behavior spec: %w", err)
	}
	path := spec.Profile
	if ctx.Options.Profile != "" {
		path = ctx.Options.Profile
	}
	if path == "" {
		return fmt.Errorf("behavior profile is required")
	}

	cache := ctx.Options.Profiles
	if cache == nil {
		cache = NewProfileCache()
	}
	profile, err := cache.Get(path)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.BehaviorRefComponent.Kind(), &component.BehaviorRef{
		Profile: profile,
		Path:    prefabs.Name(path),
	})
}

func addWander(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	if !ecs.Has(w, e, component.BehaviorRefComponent.Kind()) {
		return fmt.Errorf("wander requires a behavior profile")
	}
	return ecs.Add(w, e, component.WanderComponent.Kind(), &behavior.Wander{})
}

func addMood(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	if !ecs.Has(w, e, component.BehaviorRefComponent.Kind()) {
		return fmt.Errorf("mood requires a behavior profile")
	}
	return ecs.Add(w, e, component.MoodComponent.Kind(), &behavior.MoodCycle{})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	comp, err := buildAudioComponent(spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	if comp == nil {
		return nil
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}
