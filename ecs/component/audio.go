package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named clips for an entity. Systems request playback by
// setting Play[i]; the audio system clears the flag once handled.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request flags the named clip for playback and reports whether it exists.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
