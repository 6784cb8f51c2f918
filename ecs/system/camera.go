package system

import (
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// ScreenSize reports the current logical screen size in pixels.
type ScreenSize func() (width, height float64)

// CameraSystem keeps every camera's aspect ratio and screen size in step
// with the window layout.
type CameraSystem struct {
	screen ScreenSize
}

func NewCameraSystem(screen ScreenSize) *CameraSystem {
	return &CameraSystem{screen: screen}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || cs.screen == nil {
		return
	}
	width, height := cs.screen()
	if width <= 0 || height <= 0 {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.ScreenWidth = width
		cam.ScreenHeight = height
		cam.Aspect = width / height
	})
}
