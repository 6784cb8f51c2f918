package component

import "github.com/milk9111/moodsprites/behavior"

// BehaviorRef points at the shared, read-only profile driving an entity.
// Reloading swaps the pointer; the profile itself is never written.
type BehaviorRef struct {
	Profile *behavior.Profile
	Path    string
}

var BehaviorRefComponent = NewComponent[BehaviorRef]()

var WanderComponent = NewComponent[behavior.Wander]()

var MoodComponent = NewComponent[behavior.MoodCycle]()
