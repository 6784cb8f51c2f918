package component

type SpriteTag struct{}

var SpriteTagComponent = NewComponent[SpriteTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Clickable marks entities that the click system may hit-test.
type Clickable struct{}

var ClickableComponent = NewComponent[Clickable]()
