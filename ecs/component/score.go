package component

// ScoreCounter aggregates rewards from every sprite.
type ScoreCounter struct {
	Total   int
	Rewards int
	Prefix  string
	Profile string
}

var ScoreCounterComponent = NewComponent[ScoreCounter]()
