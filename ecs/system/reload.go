package system

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
	"github.com/milk9111/moodsprites/ecs/entity"
	"github.com/milk9111/moodsprites/prefabs"
)

// ReloadSystem applies edited prefab files on the game goroutine. Profiles
// are rebuilt and swapped in by pointer; entity mood and wander state are
// kept. A changed score script replaces the scorer's script.
type ReloadSystem struct {
	events   <-chan string
	errs     <-chan error
	profiles *entity.ProfileCache
	scorer   *Scorer
}

func NewReloadSystem(events <-chan string, errs <-chan error, profiles *entity.ProfileCache, scorer *Scorer) *ReloadSystem {
	return &ReloadSystem{events: events, errs: errs, profiles: profiles, scorer: scorer}
}

// NewWatchedReloadSystem wires a prefabs.Watcher into a ReloadSystem.
func NewWatchedReloadSystem(watcher *prefabs.Watcher, profiles *entity.ProfileCache, scorer *Scorer) *ReloadSystem {
	return NewReloadSystem(watcher.Events, watcher.Errors, profiles, scorer)
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.events:
			if !ok {
				s.events = nil
				continue
			}
			s.apply(w, path)
		case err, ok := <-s.errs:
			if !ok {
				s.errs = nil
				continue
			}
			log.Warn("reload: watcher error", "error", err)
		default:
			return
		}
	}
}

func (s *ReloadSystem) apply(w *ecs.World, path string) {
	name := prefabs.Name(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tengo":
		s.reloadScript(name)
	case ".yaml", ".yml":
		s.reloadProfile(w, name)
	}
}

func (s *ReloadSystem) reloadScript(name string) {
	if s.scorer == nil || s.scorer.script == nil || prefabs.Name(s.scorer.script.path) != name {
		return
	}
	script, err := LoadScoreScript(s.scorer.script.path)
	if err != nil {
		log.Error("reload: score script rejected", "file", name, "error", err)
		return
	}
	s.scorer.script = script
	log.Info("reload: score script", "file", name)
}

func (s *ReloadSystem) reloadProfile(w *ecs.World, name string) {
	if s.profiles == nil || !s.profiles.Has(name) {
		log.Debug("reload: ignoring", "file", name)
		return
	}
	profile, err := s.profiles.Reload(name)
	if err != nil {
		log.Error("reload: profile rejected", "file", name, "error", err)
		return
	}

	swapped := 0
	ecs.ForEach(w, component.BehaviorRefComponent.Kind(), func(_ ecs.Entity, ref *component.BehaviorRef) {
		if ref.Path != name {
			return
		}
		ref.Profile = profile
		swapped++
	})

	w.Events().Push(ecs.Event{Type: ecs.EventProfileReloaded, Data: name})
	log.Info("reload: profile", "file", name, "entities", swapped)
}
