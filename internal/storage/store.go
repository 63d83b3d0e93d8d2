// Package storage persists the best score between runs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// HighScoreStore loads and saves a single best score.
type HighScoreStore interface {
	// Load returns the stored score. A store that has never been written
	// returns 0 and no error.
	Load() (int, error)
	// Save overwrites the stored score.
	Save(score int) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for the named backend at path.
// gameID keys the row in the SQLite backend.
func Open(backend, path, gameID string) (HighScoreStore, error) {
	switch backend {
	case BackendFile, "":
		s, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(path, gameID)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// Record saves score if it beats the stored one and reports whether it did.
// An unreadable stored value counts as 0, so a corrupt store is repaired by
// the next score.
func Record(store HighScoreStore, score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}
	best, err := store.Load()
	if err != nil {
		best = 0
	}
	if score <= best {
		return false, nil
	}
	if err := store.Save(score); err != nil {
		return false, err
	}
	return true, nil
}

// resolvePath expands a leading ~ and creates the parent directories.
func resolvePath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
