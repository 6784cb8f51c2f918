// Package storage keeps high scores in a local SQLite file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPath is used when no database path is configured.
const DefaultPath = "~/.moodsprites/scores.db"

type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished session.
type ScoreEntry struct {
	ID        int64
	Profile   string
	Score     int
	Rewards   int
	CreatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	after, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand home directory: %w", err)
	}
	return filepath.Join(home, after), nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			rewards INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(profile, score DESC);
	`)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished session and returns its row id.
func (s *Store) SaveScore(profile string, score, rewards int) (int64, error) {
	if profile == "" {
		return 0, fmt.Errorf("storage: profile is required")
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (profile, score, rewards) VALUES (?, ?, ?)",
		profile, score, rewards,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: inserted id: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit scores for profile, highest first. Ties
// keep insertion order.
func (s *Store) TopScores(profile string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, score, rewards, created_at
		 FROM scores
		 WHERE profile = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Score, &e.Rewards, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: scan row: %w", err)
		}
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration: %w", err)
	}
	return entries, nil
}

// BestScore returns the highest score for profile, or 0 if none.
func (s *Store) BestScore(profile string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE profile = ?", profile).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: best score: %w", err)
	}
	return int(best.Int64), nil
}
