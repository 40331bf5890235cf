// Package pathstore persists the location of the jcli executable between runs.
//
// The file holds nothing but the absolute path, so it can be inspected or
// edited by hand.
package pathstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	storeDirName  = "jcli-interactive"
	storeFileName = "jcli_path"
)

type Store struct {
	Path string

	// Executable reports whether a saved path is still usable. Defaults to
	// IsExecutable.
	Executable func(path string) bool
}

func DefaultStorePath() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, storeDirName, storeFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(home, ".local", "share", storeDirName, storeFileName), nil
}

func NewStore(path string) *Store {
	return &Store{Path: path, Executable: IsExecutable}
}

// Load returns the saved path. A saved path that no longer points at an
// executable file is removed and reported as absent.
func (s *Store) Load() (string, bool, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read path file: %w", err)
	}

	saved := strings.TrimSpace(string(data))
	check := s.Executable
	if check == nil {
		check = IsExecutable
	}
	if saved == "" || !check(saved) {
		if err := s.Delete(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	return saved, true, nil
}

func (s *Store) Save(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create path dir: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(path), 0o600); err != nil {
		return fmt.Errorf("write path file: %w", err)
	}

	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace path file: %w", err)
	}

	return nil
}

// Delete removes the saved path. Deleting a missing file is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove path file: %w", err)
	}
	return nil
}

// Location is the file backing the store.
func (s *Store) Location() string {
	return s.Path
}

// Exists reports whether a path file is currently saved.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// IsExecutable reports whether path is a regular file with an execute bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
