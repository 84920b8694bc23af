package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/alexisbeaulieu97/signup/pkg/errors"
)

// Store persists the theme preference as a small JSON document.
type Store struct {
	path string
}

type preferencesFile struct {
	Theme string `json:"theme"`
}

// NewStore returns a Store backed by path. The file is created on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored mode. ok is false when nothing usable is stored.
func (s *Store) Load() (mode Mode, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, apperrors.NewPreferenceError(s.path, "read", err)
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", false, apperrors.NewPreferenceError(s.path, "parse", err)
	}
	if file.Theme == "" {
		return "", false, nil
	}

	mode, err = ParseMode(file.Theme)
	if err != nil {
		return "", false, apperrors.NewPreferenceError(s.path, "parse", err)
	}
	return mode, true, nil
}

// Save writes mode atomically.
func (s *Store) Save(mode Mode) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.NewPreferenceError(s.path, "write", fmt.Errorf("create directory: %w", err))
	}

	data, err := json.MarshalIndent(preferencesFile{Theme: mode.String()}, "", "  ")
	if err != nil {
		return apperrors.NewPreferenceError(s.path, "write", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return apperrors.NewPreferenceError(s.path, "write", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewPreferenceError(s.path, "write", err)
	}

	return nil
}
