package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image centered on the origin and multiplied by Tint.
type Sprite struct {
	Image *ebiten.Image
	// AngryImage replaces Image while the owner is angry, when set.
	AngryImage *ebiten.Image
	OriginX float64
	OriginY float64
	// Size is the drawn width in world units; zero draws at one pixel per
	// camera pixel-per-unit.
	Size float64
	Tint color.Color
}

var SpriteComponent = NewComponent[Sprite]()
