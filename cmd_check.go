package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/moodsprites/ecs/system"
	"github.com/milk9111/moodsprites/prefabs"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate prefabs and profiles",
	Long: `Load the game prefab, everything it references, every behavior profile
and the score script, and report which ones are invalid.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	results, err := prefabs.Check(flagGame)
	if err != nil {
		return err
	}

	if game, err := prefabs.LoadGameSpec(flagGame); err == nil && game.ScoreScript != "" {
		_, err := system.LoadScoreScript(game.ScoreScript)
		results = append(results, prefabs.CheckResult{Name: prefabs.Name(game.ScoreScript), Kind: "script", Err: err})
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(out, "%-8s %-20s %s\n", r.Kind, r.Name, status)
	}

	if n := prefabs.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(results))
	}
	return nil
}
