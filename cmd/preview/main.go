// preview opens a small window running a single behavior profile, with the
// sprite's mood and wander state printed on screen.
package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"

	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/common"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/ecs/entity"
	"github.com/milk9111/moodsprites/ecs/system"
	"github.com/milk9111/moodsprites/prefabs"
)

const previewAspect = 1.0

var (
	flagCount  int
	flagSeed   uint64
	flagCamera string
	flagSprite string
)

type previewGame struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	sprites   []ecs.Entity
	profile   string
	width     float64
	height    float64
}

func (g *previewGame) Update() error {
	g.scheduler.Update(g.world)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff})
	g.render.Draw(g.world, screen)
	ebitenutil.DebugPrint(screen, g.status())
}

func (g *previewGame) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "profile %s  score %d\n", g.profile, system.Total(g.world))
	for _, e := range g.sprites {
		mood, ok := ecs.Get(g.world, e, component.MoodComponent.Kind())
		if !ok {
			continue
		}
		wander, _ := ecs.Get(g.world, e, component.WanderComponent.Kind())
		fmt.Fprintf(&b, "%v %-5s next %.2f  dir (%.2f,%.2f) speed %.2f\n",
			e, mood.Mood(), mood.Next(), wander.Direction.X, wander.Direction.Y, wander.Speed)
	}
	return b.String()
}

func (g *previewGame) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func newPreview(profilePath string) (*previewGame, error) {
	cameraSpec, err := prefabs.LoadCameraSpec(flagCamera)
	if err != nil {
		return nil, err
	}
	w, h := entity.WindowSize(cameraSpec, previewAspect)

	g := &previewGame{
		world:  ecs.NewWorld(),
		render: system.NewRenderSystem(),
		width:  float64(w),
		height: float64(h),
	}
	if _, err := entity.NewCamera(g.world, flagCamera, previewAspect); err != nil {
		return nil, err
	}
	if _, err := entity.NewClock(g.world, 1.0/common.TPS); err != nil {
		return nil, err
	}

	profiles := entity.NewProfileCache()
	profile, err := profiles.Get(profilePath)
	if err != nil {
		return nil, err
	}
	g.profile = profile.Name
	if _, err := entity.NewScoreCounter(g.world, "", profile.Name); err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	var rng behavior.Rand = rand.New(rand.NewPCG(seed, seed))

	scorer := system.NewScorer(nil)
	g.sprites, err = entity.SpawnSprites(g.world, flagSprite, flagCount, entity.BuildOptions{Profiles: profiles, Profile: profilePath}, rng, scorer.Award)
	if err != nil {
		return nil, err
	}

	physics := system.NewPhysicsSystem()
	g.scheduler = ecs.NewScheduler(
		system.NewClockSystem(),
		system.NewCameraSystem(func() (float64, float64) { return g.width, g.height }),
		system.NewMoodSystem(rng),
		system.NewWanderSystem(rng),
		physics,
		system.NewClickSystem(&system.EbitenPointer{}, physics, rng),
		system.NewAudioSystem(),
	)
	return g, nil
}

var rootCmd = &cobra.Command{
	Use:   "preview [profile]",
	Short: "Preview a behavior profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := "wanderer.yaml"
		if len(args) == 1 {
			profile = args[0]
		}
		g, err := newPreview(profile)
		if err != nil {
			return err
		}
		ebiten.SetWindowSize(int(g.width), int(g.height))
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetWindowTitle("preview " + g.profile)
		ebiten.SetTPS(common.TPS)
		return ebiten.RunGame(g)
	},
}

func main() {
	rootCmd.Flags().IntVar(&flagCount, "count", 1, "Number of sprites")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.Flags().StringVar(&flagCamera, "camera", "camera.yaml", "Camera prefab")
	rootCmd.Flags().StringVar(&flagSprite, "sprite", "sprite.yaml", "Sprite prefab")

	if err := rootCmd.Execute(); err != nil {
		log.Error("preview", "error", err)
		os.Exit(1)
	}
}
