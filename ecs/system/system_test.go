package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

var (
	testHappy = color.NRGBA{G: 255, A: 255}
	testAngry = color.NRGBA{R: 255, A: 255}
)

func testProfile() *behavior.Profile {
	return &behavior.Profile{
		Name:                    "test",
		Speed:                   behavior.Fixed(2),
		DirectionSwitchInterval: behavior.Fixed(1),
		Directions:              behavior.Directions{Horizontal: true},
		HappyColor:              testHappy,
		AngryColor:              testAngry,
		AngryInterval:           behavior.Fixed(2),
		AngryDuration:           behavior.Fixed(1),
	}
}

func newTestWorld(t *testing.T, dt float64) (*ecs.World, *component.Clock) {
	t.Helper()
	w := ecs.NewWorld()
	clock := &component.Clock{DT: dt}
	mustAdd(t, ecs.Add(w, ecs.CreateEntity(w), component.ClockComponent.Kind(), clock))
	return w, clock
}

func addTestCamera(t *testing.T, w *ecs.World) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}))
	mustAdd(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		OrthographicSize: 5,
		Aspect:           1,
		ScreenWidth:      100,
		ScreenHeight:     100,
	}))
}

func addTestSprite(t *testing.T, w *ecs.World, p *behavior.Profile, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	mustAdd(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}))
	mustAdd(t, ecs.Add(w, e, component.BehaviorRefComponent.Kind(), &component.BehaviorRef{Profile: p, Path: "test.yaml"}))
	mustAdd(t, ecs.Add(w, e, component.MoodComponent.Kind(), &behavior.MoodCycle{}))
	mustAdd(t, ecs.Add(w, e, component.WanderComponent.Kind(), &behavior.Wander{}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.5}))
	mustAdd(t, ecs.Add(w, e, component.ClickableComponent.Kind(), &component.Clickable{}))
	mustAdd(t, ecs.Add(w, e, component.RewardSignalComponent.Kind(), &component.RewardSignal{}))
	return e
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClockSystem(t *testing.T) {
	w, clock := newTestWorld(t, 0.25)
	s := NewClockSystem()

	s.Update(w)
	s.Update(w)
	if clock.Now != 0.5 || clock.Ticks != 2 {
		t.Fatalf("expected now=0.5 ticks=2, got now=%v ticks=%d", clock.Now, clock.Ticks)
	}

	SetPaused(w, true)
	s.Update(w)
	if clock.Now != 0.5 {
		t.Fatalf("expected paused clock to hold at 0.5, got %v", clock.Now)
	}
	if _, dt, running := worldTime(w); running || dt != 0 {
		t.Fatalf("expected paused world time, got dt=%v running=%v", dt, running)
	}

	SetPaused(w, false)
	s.Update(w)
	if clock.Now != 0.75 {
		t.Fatalf("expected resumed clock at 0.75, got %v", clock.Now)
	}
}

func TestMoodSystemAndAttemptReward(t *testing.T) {
	w, clock := newTestWorld(t, 0.1)
	p := testProfile()
	e := addTestSprite(t, w, p, 0, 0)
	moods := NewMoodSystem(nil)

	rewards := 0
	signal, _ := ecs.Get(w, e, component.RewardSignalComponent.Kind())
	signal.Subscribe(func() { rewards++ })

	mood, _ := ecs.Get(w, e, component.MoodComponent.Kind())
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

	steps := []struct {
		now       float64
		click     bool
		wantOK    bool
		wantAngry bool
	}{
		{now: 0, wantAngry: false},
		{now: 1, click: true, wantOK: false, wantAngry: false},
		{now: 2, wantAngry: true},
		{now: 2.5, click: true, wantOK: true, wantAngry: false},
		{now: 2.5, click: true, wantOK: false, wantAngry: false},
		{now: 4.4, wantAngry: false},
		{now: 4.5, wantAngry: true},
		{now: 5.5, wantAngry: false},
	}

	for _, s := range steps {
		clock.Now = s.now
		if s.click {
			if got := AttemptReward(w, e, nil); got != s.wantOK {
				t.Fatalf("t=%v: AttemptReward = %v, want %v", s.now, got, s.wantOK)
			}
		} else {
			moods.Update(w)
		}
		if mood.Angry() != s.wantAngry {
			t.Fatalf("t=%v: angry = %v, want %v", s.now, mood.Angry(), s.wantAngry)
		}
		want := color.Color(testHappy)
		if s.wantAngry {
			want = testAngry
		}
		if sprite.Tint != want {
			t.Fatalf("t=%v: tint = %v, want %v", s.now, sprite.Tint, want)
		}
	}

	if rewards != 1 {
		t.Fatalf("expected exactly one reward, got %d", rewards)
	}
}

func TestMoodSystemHoldsWhilePaused(t *testing.T) {
	w, clock := newTestWorld(t, 0.1)
	e := addTestSprite(t, w, testProfile(), 0, 0)
	moods := NewMoodSystem(nil)

	moods.Update(w)
	clock.Now = 3
	clock.Paused = true
	moods.Update(w)

	mood, _ := ecs.Get(w, e, component.MoodComponent.Kind())
	if mood.Angry() {
		t.Fatalf("expected paused mood cycle to stay happy")
	}
}

func TestPhysicsSystemMovesAndHitTests(t *testing.T) {
	w, _ := newTestWorld(t, 0.5)
	e := addTestSprite(t, w, testProfile(), 0, 0)
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	body.Velocity = cp.Vector{X: 2}

	ps := NewPhysicsSystem()
	ps.Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if !near(tr.X, 1) || !near(tr.Y, 0) {
		t.Fatalf("expected sprite at (1,0), got (%v,%v)", tr.X, tr.Y)
	}
	if body.Body == nil || body.Shape == nil {
		t.Fatalf("expected physics body to be created")
	}

	cases := []struct {
		name string
		at   cp.Vector
		want bool
	}{
		{"center", cp.Vector{X: 1}, true},
		{"edge", cp.Vector{X: 1.4, Y: 0}, true},
		{"outside", cp.Vector{X: 2, Y: 2}, false},
		{"old_position", cp.Vector{X: -0.4}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ps.EntityAt(c.at)
			if ok != c.want || (ok && got != e) {
				t.Fatalf("EntityAt(%v) = %v,%v, want hit=%v", c.at, got, ok, c.want)
			}
		})
	}

	ecs.DestroyEntity(w, e)
	ps.Update(w)
	if _, ok := ps.EntityAt(cp.Vector{X: 1}); ok {
		t.Fatalf("expected destroyed sprite to leave the space")
	}
}

func TestWanderSystemReselectsOutsideView(t *testing.T) {
	w, _ := newTestWorld(t, 0.1)
	addTestCamera(t, w)
	e := addTestSprite(t, w, testProfile(), 6, 0)

	NewWanderSystem(nil).Update(w)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if !near(tr.X, 6-behavior.NudgeDistance) || tr.Y != 0 {
		t.Fatalf("expected nudge toward the view, got (%v,%v)", tr.X, tr.Y)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.Velocity != (cp.Vector{X: -2}) {
		t.Fatalf("expected velocity (-2,0), got %v", body.Velocity)
	}
}

func TestWanderSystemKeepsDirectionInsideView(t *testing.T) {
	w, clock := newTestWorld(t, 0.1)
	addTestCamera(t, w)
	e := addTestSprite(t, w, testProfile(), 0, 0)
	ws := NewWanderSystem(nil)

	ws.Update(w)
	wander, _ := ecs.Get(w, e, component.WanderComponent.Kind())
	if wander.Direction != behavior.Right || wander.SwitchAt() != 1 {
		t.Fatalf("unexpected first selection %+v at %v", wander.Direction, wander.SwitchAt())
	}

	clock.Now = 0.5
	ws.Update(w)
	if wander.SwitchAt() != 1 {
		t.Fatalf("expected no switch before the deadline, got %v", wander.SwitchAt())
	}

	clock.Now = 1
	ws.Update(w)
	if wander.SwitchAt() != 2 {
		t.Fatalf("expected switch at the deadline, next=%v", wander.SwitchAt())
	}
}

func TestClickSystem(t *testing.T) {
	w, clock := newTestWorld(t, 0.1)
	addTestCamera(t, w)
	e := addTestSprite(t, w, testProfile(), 0, 0)

	rewards := 0
	signal, _ := ecs.Get(w, e, component.RewardSignalComponent.Kind())
	signal.Subscribe(func() { rewards++ })

	mood, _ := ecs.Get(w, e, component.MoodComponent.Kind())
	mood.Start(0, testProfile(), nil)
	clock.Now = 2
	mood.Advance(2, testProfile(), nil)

	pointer := &fakePointer{}
	hits := &fakeHits{entity: e}
	cs := NewClickSystem(pointer, hits, nil)

	// screen center maps to the camera center
	pointer.presses = []cp.Vector{{X: 50, Y: 50}}
	cs.Update(w)
	if rewards != 1 {
		t.Fatalf("expected click on angry sprite to reward, got %d", rewards)
	}
	if hits.last != (cp.Vector{}) {
		t.Fatalf("expected world point (0,0), got %v", hits.last)
	}

	pointer.presses = []cp.Vector{{X: 50, Y: 50}}
	cs.Update(w)
	if rewards != 1 {
		t.Fatalf("expected click on happy sprite to be ignored, got %d", rewards)
	}

	hits.miss = true
	clock.Now = 10
	mood.Advance(10, testProfile(), nil)
	pointer.presses = []cp.Vector{{X: 0, Y: 0}}
	cs.Update(w)
	if rewards != 1 {
		t.Fatalf("expected missed click to be ignored, got %d", rewards)
	}
}

type fakePointer struct {
	presses []cp.Vector
}

func (p *fakePointer) JustPressed() []cp.Vector {
	out := p.presses
	p.presses = nil
	return out
}

type fakeHits struct {
	entity ecs.Entity
	miss   bool
	last   cp.Vector
}

func (h *fakeHits) EntityAt(p cp.Vector) (ecs.Entity, bool) {
	h.last = p
	if h.miss {
		return 0, false
	}
	return h.entity, true
}
