package behavior

import (
	"image/color"
	"testing"
)

func fixedMoodProfile(interval, duration float64) *Profile {
	return &Profile{
		Name:          "test",
		HappyColor:    color.White,
		AngryColor:    color.Black,
		AngryInterval: Fixed(interval),
		AngryDuration: Fixed(duration),
	}
}

func TestMoodCycleStartsHappy(t *testing.T) {
	var c MoodCycle
	p := fixedMoodProfile(2, 1)
	c.Start(0, p, nil)
	if c.Angry() {
		t.Fatalf("expected happy right after start")
	}
	if c.Next() != 2 {
		t.Fatalf("expected first transition at 2, got %v", c.Next())
	}
}

func TestMoodCycleTimeline(t *testing.T) {
	p := fixedMoodProfile(2, 1)
	var c MoodCycle
	c.Start(0, p, nil)

	steps := []struct {
		now   float64
		angry bool
	}{
		{0.5, false},
		{1.99, false},
		{2.0, true},
		{2.9, true},
		{3.0, false},
		{4.99, false},
		{5.0, true},
		{6.0, false},
		{8.0, true},
	}
	for _, s := range steps {
		c.Advance(s.now, p, nil)
		if c.Angry() != s.angry {
			t.Fatalf("t=%v: expected angry=%v, got %v", s.now, s.angry, c.Angry())
		}
	}
}

func TestMoodCycleClickRestartsCycle(t *testing.T) {
	p := fixedMoodProfile(2, 1)
	var c MoodCycle
	c.Start(0, p, nil)

	c.Advance(2.0, p, nil)
	if !c.Angry() {
		t.Fatalf("expected angry at 2.0")
	}

	if !c.Click(2.5, p, nil) {
		t.Fatalf("click while angry should be accepted")
	}
	if c.Angry() {
		t.Fatalf("expected happy right after an accepted click")
	}
	if c.Click(2.5, p, nil) {
		t.Fatalf("second click in the same instant should be ignored")
	}

	c.Advance(3.0, p, nil)
	if c.Angry() {
		t.Fatalf("old angry deadline must not fire after restart")
	}
	c.Advance(4.49, p, nil)
	if c.Angry() {
		t.Fatalf("expected happy before 4.5")
	}
	c.Advance(4.5, p, nil)
	if !c.Angry() {
		t.Fatalf("expected angry at 4.5")
	}
}

func TestMoodCycleClickWhileHappyIsIgnored(t *testing.T) {
	p := fixedMoodProfile(2, 1)
	var c MoodCycle
	if c.Click(0, p, nil) {
		t.Fatalf("click before start should be ignored")
	}
	c.Start(0, p, nil)
	if c.Click(1, p, nil) {
		t.Fatalf("click while happy should be ignored")
	}
	if c.Next() != 2 {
		t.Fatalf("ignored click must not reschedule, next=%v", c.Next())
	}
}

func TestMoodCycleLongFrame(t *testing.T) {
	p := fixedMoodProfile(2, 1)
	var c MoodCycle
	c.Start(0, p, nil)

	// transitions due at 2, 3, 5 and 6 all land in one update
	changed := c.Advance(7, p, nil)
	if changed {
		t.Fatalf("mood returned to happy, expected no net change")
	}
	if c.Angry() {
		t.Fatalf("expected happy at 7")
	}
	if c.Next() != 8 {
		t.Fatalf("expected next transition at 8, got %v", c.Next())
	}
}

func TestMoodCycleResamplesEveryWait(t *testing.T) {
	p := &Profile{
		HappyColor:    color.White,
		AngryColor:    color.Black,
		AngryInterval: Range(1, 3),
		AngryDuration: Range(0, 2),
	}
	r := &seqRand{floats: []float64{0, 0.5, 1, 0.25}}
	var c MoodCycle

	c.Start(0, p, r) // interval 1
	if c.Next() != 1 {
		t.Fatalf("expected next=1, got %v", c.Next())
	}
	c.Advance(1, p, r) // duration 1
	if !c.Angry() || c.Next() != 2 {
		t.Fatalf("expected angry until 2, got angry=%v next=%v", c.Angry(), c.Next())
	}
	c.Advance(2, p, r) // interval 3
	if c.Angry() || c.Next() != 5 {
		t.Fatalf("expected happy until 5, got angry=%v next=%v", c.Angry(), c.Next())
	}
	c.Advance(5, p, r) // duration 0.5
	if !c.Angry() || c.Next() != 5.5 {
		t.Fatalf("expected angry until 5.5, got angry=%v next=%v", c.Angry(), c.Next())
	}
}

func TestMoodCycleAutoStarts(t *testing.T) {
	p := fixedMoodProfile(2, 1)
	var c MoodCycle
	if c.Advance(10, p, nil) {
		t.Fatalf("first advance should only start the cycle")
	}
	if !c.Running() || c.Angry() || c.Next() != 12 {
		t.Fatalf("expected running happy cycle with next=12, got running=%v angry=%v next=%v", c.Running(), c.Angry(), c.Next())
	}
}

func TestMoodString(t *testing.T) {
	if Happy.String() != "happy" || Angry.String() != "angry" {
		t.Fatalf("unexpected mood names %q %q", Happy, Angry)
	}
}
