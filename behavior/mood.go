package behavior

// Mood is the display state of a sprite.
type Mood uint8

const (
	Happy Mood = iota
	Angry
)

func (m Mood) String() string {
	switch m {
	case Happy:
		return "happy"
	case Angry:
		return "angry"
	default:
		return "unknown"
	}
}

// MoodCycle toggles between Happy and Angry on sampled intervals. The
// pending wait is a single deadline, so restarting the cycle discards it.
type MoodCycle struct {
	mood    Mood
	next    float64
	running bool
}

// Start resets the cycle to Happy and schedules the next Angry transition
// one sampled AngryInterval after now.
func (c *MoodCycle) Start(now float64, p *Profile, r Rand) {
	c.mood = Happy
	c.next = now + wait(p.AngryInterval, r)
	c.running = true
}

// Advance applies every transition due at or before now and reports whether
// the mood changed. Each wait is chained from the previous deadline.
func (c *MoodCycle) Advance(now float64, p *Profile, r Rand) bool {
	if !c.running {
		c.Start(now, p, r)
		return false
	}

	before := c.mood
	for now >= c.next {
		var d float64
		if c.mood == Happy {
			c.mood = Angry
			d = wait(p.AngryDuration, r)
		} else {
			c.mood = Happy
			d = wait(p.AngryInterval, r)
		}
		c.next += d
		if d == 0 {
			break
		}
	}
	return c.mood != before
}

// Click consumes the angry window. It returns true, restarting the cycle at
// now, only when the sprite was Angry.
func (c *MoodCycle) Click(now float64, p *Profile, r Rand) bool {
	if !c.running || c.mood != Angry {
		return false
	}
	c.Start(now, p, r)
	return true
}

func (c *MoodCycle) Mood() Mood {
	return c.mood
}

func (c *MoodCycle) Angry() bool {
	return c.mood == Angry
}

// Next is the time of the pending transition.
func (c *MoodCycle) Next() float64 {
	return c.next
}

func (c *MoodCycle) Running() bool {
	return c.running
}

func wait(v Value, r Rand) float64 {
	d := v.Get(r)
	if d < 0 {
		return 0
	}
	return d
}
