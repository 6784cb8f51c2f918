package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		profile string
		score   int
		rewards int
	}{
		{"wanderer", 10, 8},
		{"wanderer", 30, 20},
		{"wanderer", 20, 15},
		{"wanderer", 30, 21},
		{"skitter", 99, 50},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.profile, s.score, s.rewards); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	cases := []struct {
		name    string
		profile string
		limit   int
		want    []int
	}{
		{"ordered", "wanderer", 10, []int{30, 30, 20, 10}},
		{"limited", "wanderer", 2, []int{30, 30}},
		{"default_limit", "wanderer", 0, []int{30, 30, 20, 10}},
		{"other_profile", "skitter", 10, []int{99}},
		{"unknown", "nobody", 10, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entries, err := store.TopScores(c.profile, c.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(entries) != len(c.want) {
				t.Fatalf("expected %d entries, got %d", len(c.want), len(entries))
			}
			for i, e := range entries {
				if e.Score != c.want[i] || e.Profile != c.profile {
					t.Fatalf("entry %d: got %+v, want score %d", i, e, c.want[i])
				}
			}
		})
	}

	top, _ := store.TopScores("wanderer", 2)
	if top[0].Rewards != 20 || top[1].Rewards != 21 {
		t.Fatalf("expected ties in insertion order, got %+v", top)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("wanderer")
	if err != nil || best != 0 {
		t.Fatalf("expected 0 for empty table, got %d, %v", best, err)
	}

	store.SaveScore("wanderer", 5, 5)
	store.SaveScore("wanderer", 12, 9)
	if best, _ := store.BestScore("wanderer"); best != 12 {
		t.Fatalf("expected best 12, got %d", best)
	}
}

func TestStoreRejectsEmptyProfile(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("", 1, 1); err == nil {
		t.Fatalf("expected error for empty profile")
	}
}
