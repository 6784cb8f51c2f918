package component

// RewardSignal fans an accepted click out to its subscribers. Listeners
// run synchronously, in subscription order.
type RewardSignal struct {
	listeners []func()
}

func (r *RewardSignal) Subscribe(fn func()) {
	if r == nil || fn == nil {
		return
	}
	r.listeners = append(r.listeners, fn)
}

func (r *RewardSignal) Emit() {
	if r == nil {
		return
	}
	for _, fn := range r.listeners {
		fn()
	}
}

func (r *RewardSignal) Listeners() int {
	if r == nil {
		return 0
	}
	return len(r.listeners)
}

var RewardSignalComponent = NewComponent[RewardSignal]()
