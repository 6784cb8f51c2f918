package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/moodsprites/common"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/ecs/entity"
	"github.com/milk9111/moodsprites/ecs/system"
	"github.com/milk9111/moodsprites/prefabs"
	"github.com/milk9111/moodsprites/storage"
)

var backgroundColor = color.NRGBA{R: 0x1d, G: 0x22, B: 0x2b, A: 0xff}

// Config selects what NewGame builds.
type Config struct {
	GamePrefab string
	// Profile overrides the game prefab's profile when set.
	Profile string
	// Count overrides the game prefab's sprite count when >= 0.
	Count  int
	Seed   uint64
	DBPath string
	Watch  bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	hud       *system.HUDSystem
	pauseUI   *ebitenui.UI

	store   *storage.Store
	watcher *prefabs.Watcher

	profile string
	windowW int
	windowH int
	screenW float64
	screenH float64

	paused bool
	quit   bool
	saved  bool
}

func NewGame(cfg Config) (*Game, error) {
	if cfg.GamePrefab == "" {
		cfg.GamePrefab = "game.yaml"
	}
	spec, err := prefabs.LoadGameSpec(cfg.GamePrefab)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	count := spec.SpriteCount
	if cfg.Count >= 0 {
		count = cfg.Count
	}
	profilePath := spec.Profile
	if cfg.Profile != "" {
		profilePath = cfg.Profile
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	cameraSpec, err := prefabs.LoadCameraSpec(spec.Camera)
	if err != nil {
		return nil, fmt.Errorf("game: camera: %w", err)
	}
	const initialAspect = 16.0 / 9.0
	windowW, windowH := entity.WindowSize(cameraSpec, initialAspect)

	g := &Game{
		world:   ecs.NewWorld(),
		render:  system.NewRenderSystem(),
		hud:     system.NewHUDSystem(),
		windowW: windowW,
		windowH: windowH,
		screenW: float64(windowW),
		screenH: float64(windowH),
	}
	g.pauseUI = NewPauseUI(g)

	if _, err := entity.NewCamera(g.world, spec.Camera, initialAspect); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewClock(g.world, 1.0/common.TPS); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	profiles := entity.NewProfileCache()
	profile, err := profiles.Get(profilePath)
	if err != nil {
		return nil, fmt.Errorf("game: profile: %w", err)
	}
	g.profile = profile.Name
	if _, err := entity.NewScoreCounter(g.world, spec.ScorePrefix, profile.Name); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	var script *system.ScoreScript
	if spec.ScoreScript != "" {
		script, err = system.LoadScoreScript(spec.ScoreScript)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}
	scorer := system.NewScorer(script)

	opts := entity.BuildOptions{Profiles: profiles, Profile: profilePath}
	if _, err := entity.SpawnSprites(g.world, spec.Sprite, count, opts, rng, scorer.Award); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	log.Info("game: spawned", "sprites", count, "profile", profile.Name, "seed", seed)

	physics := system.NewPhysicsSystem()
	g.scheduler = ecs.NewScheduler(
		system.NewClockSystem(),
		system.NewCameraSystem(g.screenSize),
	)
	if cfg.Watch {
		g.watcher, err = prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"))
		if err != nil {
			log.Warn("game: prefab watcher disabled", "error", err)
		} else {
			g.scheduler.Add(system.NewWatchedReloadSystem(g.watcher, profiles, scorer))
			log.Info("game: watching prefabs", "dir", prefabs.DiskDir)
		}
	}
	g.scheduler.Add(system.NewMoodSystem(rng))
	g.scheduler.Add(system.NewWanderSystem(rng))
	g.scheduler.Add(physics)
	g.scheduler.Add(system.NewClickSystem(&system.EbitenPointer{}, physics, rng))
	g.scheduler.Add(system.NewEffectsSystem(spec.Explosion))
	g.scheduler.Add(system.NewExplosionSystem())
	g.scheduler.Add(system.NewTTLSystem())
	g.scheduler.Add(system.NewAudioSystem())

	g.store, err = storage.Open(cfg.DBPath)
	if err != nil {
		log.Warn("game: could not open scores database", "error", err)
		g.store = nil
	}

	return g, nil
}

func (g *Game) WindowSize() (int, int) {
	return g.windowW, g.windowH
}

func (g *Game) screenSize() (float64, float64) {
	return g.screenW, g.screenH
}

func (g *Game) Update() error {
	if g.quit || ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	system.SetPaused(g.world, paused)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.render.Draw(g.world, screen)
	g.hud.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close records the session score once and releases resources.
func (g *Game) Close() {
	if g.saved {
		return
	}
	g.saved = true

	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.store == nil {
		return
	}
	defer g.store.Close()

	counter := scoreCounter(g.world)
	if counter == nil || counter.Rewards == 0 {
		return
	}
	if _, err := g.store.SaveScore(g.profile, counter.Total, counter.Rewards); err != nil {
		log.Error("game: save score", "error", err)
		return
	}
	log.Info("game: score saved", "profile", g.profile, "score", counter.Total)
}

func scoreCounter(w *ecs.World) *component.ScoreCounter {
	e, ok := w.First(component.ScoreCounterComponent.Kind())
	if !ok {
		return nil
	}
	counter, _ := ecs.Get(w, e, component.ScoreCounterComponent.Kind())
	return counter
}
