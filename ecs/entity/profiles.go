package entity

import (
	"sort"

	"github.com/milk9111/moodsprites/behavior"
	"github.com/milk9111/moodsprites/prefabs"
)

// ProfileCache keeps one loaded profile per prefab name so every entity
// built from the same file shares the same *behavior.Profile.
type ProfileCache struct {
	byName map[string]*behavior.Profile
	load   func(name string) (*behavior.Profile, error)
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{
		byName: map[string]*behavior.Profile{},
		load:   prefabs.LoadProfile,
	}
}

// Get returns the cached profile, loading it on first use.
func (c *ProfileCache) Get(path string) (*behavior.Profile, error) {
	name := prefabs.Name(path)
	if p, ok := c.byName[name]; ok {
		return p, nil
	}
	p, err := c.load(name)
	if err != nil {
		return nil, err
	}
	c.byName[name] = p
	return p, nil
}

// Reload loads a fresh profile for path and replaces the cached one. The
// previous profile is left untouched for anyone still holding it.
func (c *ProfileCache) Reload(path string) (*behavior.Profile, error) {
	name := prefabs.Name(path)
	p, err := c.load(name)
	if err != nil {
		return nil, err
	}
	c.byName[name] = p
	return p, nil
}

// Has reports whether a profile for path has been loaded.
func (c *ProfileCache) Has(path string) bool {
	_, ok := c.byName[prefabs.Name(path)]
	return ok
}

func (c *ProfileCache) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
