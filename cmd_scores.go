package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milk9111/moodsprites/prefabs"
	"github.com/milk9111/moodsprites/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [profile]",
	Short: "Show high scores for a profile",
	Long: `Display the top 10 scores recorded for a behavior profile.

Examples:
  moodsprites scores
  moodsprites scores skitter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	profilePath := "wanderer.yaml"
	if len(args) == 1 {
		profilePath = args[0]
		if !strings.HasSuffix(profilePath, ".yaml") {
			profilePath += ".yaml"
		}
	}
	profile := prefabs.ProfileKey(profilePath)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(profile, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", profile)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-8s %-8s %s\n", "Rank", "Score", "Clicks", "Date")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	for i, s := range scores {
		date := "-"
		if !s.CreatedAt.IsZero() {
			date = s.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "%-6d %-8d %-8d %s\n", i+1, s.Score, s.Rewards, date)
	}
	return nil
}
