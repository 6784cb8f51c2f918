package component

// TTL destroys an entity after the given number of update ticks. Effects
// carry it as an upper bound on their lifetime.
type TTL struct {
	// Frames remaining for the TTL (in update ticks)
	Frames int
}

var TTLComponent = NewComponent[TTL]()
