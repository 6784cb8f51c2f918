package component

// Explosion grows an entity from StartScale to EndScale. T is the lerp
// parameter and advances by Speed per second.
type Explosion struct {
	StartScale float64
	EndScale   float64
	Speed      float64
	T          float64
}

var ExplosionComponent = NewComponent[Explosion]()
