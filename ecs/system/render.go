package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/ecs/entity"
)

// RenderSystem draws sprites in world space through the active camera,
// lowest render layer first.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view, ok := entity.ActiveCamera(w)
	if !ok {
		return
	}
	bounds := screen.Bounds()
	view.ScreenWidth = float64(bounds.Dx())
	view.ScreenHeight = float64(bounds.Dy())
	ppu := view.PixelsPerWorldUnit()
	if ppu <= 0 {
		return
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sortByLayer(w, entities)

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		img := s.Image
		if s.AngryImage != nil {
			if mood, ok := ecs.Get(w, e, component.MoodComponent.Kind()); ok && mood.Angry() {
				img = s.AngryImage
			}
		}
		if img == nil {
			continue
		}

		imgW := float64(img.Bounds().Dx())
		imgH := float64(img.Bounds().Dy())
		if imgW == 0 || imgH == 0 {
			continue
		}

		originX, originY := s.OriginX, s.OriginY
		if originX == 0 && originY == 0 {
			originX, originY = imgW/2, imgH/2
		}

		size := s.Size
		if size <= 0 {
			size = 1
		}
		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		pixels := size * ppu / imgW

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-originX, -originY)
		op.GeoM.Scale(pixels*sx, pixels*sy)
		// world rotation is counter-clockwise with y up
		op.GeoM.Rotate(-t.Rotation)
		x, y := view.WorldToScreen(cp.Vector{X: t.X, Y: t.Y})
		op.GeoM.Translate(x, y)
		if s.Tint != nil {
			op.ColorScale.ScaleWithColor(s.Tint)
		}
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(img, op)
	}
}

func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}
