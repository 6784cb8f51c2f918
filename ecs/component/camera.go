package component

// Camera is an orthographic camera centered on its Transform.
// OrthographicSize is half the visible height in world units. Aspect and
// the screen size are refreshed from the window layout every tick.
type Camera struct {
	OrthographicSize float64
	PixelsPerUnit    float64
	Aspect           float64
	ScreenWidth      float64
	ScreenHeight     float64
}

var CameraComponent = NewComponent[Camera]()
