package component

// Clock is the simulated world time in seconds. It stops while Paused.
type Clock struct {
	Now    float64
	DT     float64
	Ticks  int
	Paused bool
}

var ClockComponent = NewComponent[Clock]()
