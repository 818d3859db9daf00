package prefs

// Package prefs holds per-installation UI preferences: the selected
// document set and the dark-mode flag. Every mutation persists the full
// state to disk synchronously before returning, so a crash never loses
// an acknowledged change.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

type state struct {
	SelectedIDs []string `json:"selected_ids"`
	DarkMode    bool     `json:"dark_mode"`
}

// Store is a file-backed preferences holder safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	path     string
	selected map[string]struct{}
	darkMode bool
}

// Open loads preferences from path, creating parent directories as
// needed. A missing file starts empty; a corrupt file is treated as
// empty rather than failing the whole service. An unusable path is a
// configuration error and is returned, not panicked.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}

	s := &Store{path: path, selected: make(map[string]struct{})}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return s, nil
	}
	for _, id := range st.SelectedIDs {
		s.selected[id] = struct{}{}
	}
	s.darkMode = st.DarkMode
	return s, nil
}

// Toggle flips membership of id in the selected set and reports the new
// membership state.
func (s *Store) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, in := s.selected[id]
	if in {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
	if err := s.persist(); err != nil {
		// Roll back so memory and disk stay consistent.
		if in {
			s.selected[id] = struct{}{}
		} else {
			delete(s.selected, id)
		}
		return in, err
	}
	return !in, nil
}

// SetSelected replaces the selected set.
func (s *Store) SetSelected(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.selected
	s.selected = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
	if err := s.persist(); err != nil {
		s.selected = prev
		return err
	}
	return nil
}

// ClearSelected empties the selected set.
func (s *Store) ClearSelected() error {
	return s.SetSelected(nil)
}

// Selected returns the selected IDs, sorted for stable output.
func (s *Store) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ToggleDarkMode flips the dark-mode flag and reports the new value.
func (s *Store) ToggleDarkMode() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = !s.darkMode
	if err := s.persist(); err != nil {
		s.darkMode = !s.darkMode
		return s.darkMode, err
	}
	return s.darkMode, nil
}

// DarkMode returns the current dark-mode flag.
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// persist writes the full state via a temp file and rename so readers
// never observe a partial write. Caller holds the lock.
func (s *Store) persist() error {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(state{SelectedIDs: ids, DarkMode: s.darkMode})
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
