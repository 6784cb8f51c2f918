// moodsprites is a small clicker: sprites wander around the screen, turn
// angry on a timer, and score a point when clicked while angry.
//
// Usage:
//
//	moodsprites               - Play
//	moodsprites scores [name] - Show high scores for a profile
//	moodsprites check         - Validate every prefab and profile
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/moodsprites/common"
	"github.com/milk9111/moodsprites/storage"
)

var (
	flagCount   int
	flagProfile string
	flagGame    string
	flagSeed    uint64
	flagDebug   bool
	flagDBPath  string
	flagWatch   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moodsprites",
	Short: "Click the angry sprites",
	Long: `Sprites wander inside the window and switch between happy and angry.
Clicking a sprite while it is angry scores points and calms it down.

Examples:
  moodsprites
  moodsprites --count 8 --profile skitter.yaml
  moodsprites --watch --debug
  moodsprites scores wanderer`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(flagDebug)
	},
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagGame, "game", "game.yaml", "Game prefab")

	rootCmd.Flags().IntVar(&flagCount, "count", -1, "Number of sprites (-1 = from game prefab)")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "Behavior profile for every sprite (default from game prefab)")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload edited prefabs from disk while running")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

func setupLogger(debug bool) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "moodsprites",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

func runGame(cmd *cobra.Command, args []string) error {
	game, err := NewGame(Config{
		GamePrefab: flagGame,
		Profile:    flagProfile,
		Count:      flagCount,
		Seed:       flagSeed,
		DBPath:     flagDBPath,
		Watch:      flagWatch,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("moodsprites")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(common.TPS)

	return ebiten.RunGame(game)
}
