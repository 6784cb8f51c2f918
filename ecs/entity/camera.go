package entity

import (
	"fmt"

	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/prefabs"
)

// NewCamera creates the orthographic camera described by the camera prefab.
// aspect seeds Camera.Aspect until the first layout.
func NewCamera(w *ecs.World, prefabPath string, aspect float64) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	scaleX, scaleY := cameraSpec.Transform.ScaleX, cameraSpec.Transform.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:        cameraSpec.Transform.X,
		Y:        cameraSpec.Transform.Y,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: cameraSpec.Transform.Rotation,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if aspect <= 0 {
		aspect = 1
	}
	width, height := WindowSize(cameraSpec, aspect)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		OrthographicSize: cameraSpec.OrthographicSize,
		PixelsPerUnit:    cameraSpec.PixelsPerUnit,
		Aspect:           aspect,
		ScreenWidth:      float64(width),
		ScreenHeight:     float64(height),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

// WindowSize is the initial window size that shows the whole orthographic
// view at the prefab's pixels per unit.
func WindowSize(spec *prefabs.CameraSpec, aspect float64) (int, int) {
	height := 2 * spec.OrthographicSize * spec.PixelsPerUnit
	return int(height * aspect), int(height)
}
