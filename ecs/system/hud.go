package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin = 12
	hudScale  = 2
)

// HUDSystem draws the score counter in the top left corner.
type HUDSystem struct {
	face text.Face
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}
	e, ok := w.First(component.ScoreCounterComponent.Kind())
	if !ok {
		return
	}
	counter, _ := ecs.Get(w, e, component.ScoreCounterComponent.Kind())

	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, ScoreText(counter), h.face, op)
}

// ScoreText formats the counter as "<prefix><total>".
func ScoreText(counter *component.ScoreCounter) string {
	if counter == nil {
		return ""
	}
	return fmt.Sprintf("%s%d", counter.Prefix, counter.Total)
}
