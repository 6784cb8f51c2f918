package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/moodsprites/prefabs"
)

// ScoreScript computes the points for one accepted reward. The script sees
// total, rewards and profile and must leave an int in points.
type ScoreScript struct {
	path     string
	compiled *tengo.Compiled
}

func LoadScoreScript(path string) (*ScoreScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("score script %q: %w", path, err)
	}
	return CompileScoreScript(path, src)
}

func CompileScoreScript(path string, src []byte) (*ScoreScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("total", 0)
	_ = script.Add("rewards", 0)
	_ = script.Add("profile", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("score script %q: compile: %w", path, err)
	}
	if !compiled.IsDefined("points") {
		return nil, fmt.Errorf("score script %q: does not define points", path)
	}
	return &ScoreScript{path: path, compiled: compiled}, nil
}

// Points runs the script for the reward about to be counted. rewards
// includes that reward.
func (s *ScoreScript) Points(total, rewards int, profile string) (int, error) {
	if s == nil || s.compiled == nil {
		return 1, nil
	}
	if err := s.compiled.Set("total", total); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("rewards", rewards); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("profile", profile); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("score script %q: run: %w", s.path, err)
	}
	return s.compiled.Get("points").Int(), nil
}
