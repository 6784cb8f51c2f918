package prefabs

import (
	"fmt"
	"strings"
)

// CheckResult is the validation outcome of one prefab file.
type CheckResult struct {
	Name string
	Kind string
	Err  error
}

// Check loads the game prefab, everything it references and every other
// yaml file as a behavior profile, reporting one result per file. The error
// is non-nil only when the game prefab itself cannot be read.
func Check(gameName string) ([]CheckResult, error) {
	game, err := LoadGameSpec(gameName)
	if err != nil {
		return nil, fmt.Errorf("prefabs: check %s: %w", gameName, err)
	}

	results := []CheckResult{{Name: Name(gameName), Kind: "game"}}
	seen := map[string]bool{Name(gameName): true}

	add := func(name, kind string, load func(string) error) {
		if name == "" || seen[Name(name)] {
			return
		}
		seen[Name(name)] = true
		results = append(results, CheckResult{Name: Name(name), Kind: kind, Err: load(name)})
	}

	add(game.Camera, "camera", func(n string) error {
		_, err := LoadCameraSpec(n)
		return err
	})
	add(game.Sprite, "entity", func(n string) error {
		spec, err := LoadEntityBuildSpec(n)
		if err != nil {
			return err
		}
		if len(spec.Components) == 0 {
			return fmt.Errorf("no components")
		}
		return nil
	})

	names, err := List()
	if err != nil {
		return results, err
	}
	if game.Profile != "" {
		names = append([]string{game.Profile}, names...)
	}
	for _, name := range names {
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		add(name, "profile", func(n string) error {
			_, err := LoadProfile(n)
			return err
		})
	}

	return results, nil
}

// Failed counts results with errors.
func Failed(results []CheckResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
