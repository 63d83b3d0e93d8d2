package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileStore keeps the score as a decimal integer in a text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
// The file itself is created on the first Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("storage: empty score file path")
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: resolved}, nil
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the score. A missing file is 0; an unreadable or malformed
// one is 0 with an error describing why.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt score file %s: %w", s.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: corrupt score file %s: negative score %d", s.path, score)
	}
	return score, nil
}

// Save writes the score, replacing the file contents.
func (s *FileStore) Save(score int) error {
	data := strconv.Itoa(score) + "\n"
	if err := os.WriteFile(s.path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open.
func (s *FileStore) Close() error {
	return nil
}
