// Package store holds the selection state for the session: the ordered set
// of selected seat ids and the currently focused seat. The selection set is
// persisted to a single JSON record after every mutation and rehydrated on
// construction; focus never crosses sessions.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// MaxSelected is the hard cap on the selection set size.
	MaxSelected = 8

	appDir        = "seatmap-cli"
	selectionFile = "selection.json"
)

type selectionRecord struct {
	SelectedSeats []string `json:"selected_seats"`
}

// Store is the selection state object. Construct one with Open or OpenAt and
// pass it by pointer; it is not safe for concurrent use, matching the
// single-threaded event model of the TUI.
type Store struct {
	path     string
	selected []string
	focused  string
}

// Open constructs a store persisted under the user config dir. If the config
// dir cannot be resolved the store still works, just without persistence.
func Open() *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return OpenAt("")
	}
	return OpenAt(filepath.Join(dir, appDir, selectionFile))
}

// OpenAt constructs a store persisted at path. An empty path disables
// persistence. A missing or malformed record yields an empty selection;
// rehydration never fails.
func OpenAt(path string) *Store {
	s := &Store{path: path}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var record selectionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return s
	}
	seen := map[string]bool{}
	for _, id := range record.SelectedSeats {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		s.selected = append(s.selected, id)
		if len(s.selected) == MaxSelected {
			break
		}
	}
	return s
}

// ToggleSeat removes id if selected, preserving the order of the rest.
// Otherwise it appends id unless the selection is full, in which case the
// state is left unchanged; callers consult CanSelectMore to distinguish the
// no-op and decide the UX.
func (s *Store) ToggleSeat(id string) {
	for i, selected := range s.selected {
		if selected == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			s.save()
			return
		}
	}
	if len(s.selected) >= MaxSelected {
		return
	}
	s.selected = append(s.selected, id)
	s.save()
}

// SetFocusedSeat replaces the focus unconditionally; empty means none.
func (s *Store) SetFocusedSeat(id string) {
	s.focused = id
}

// FocusedSeat returns the focused seat id, or empty when none.
func (s *Store) FocusedSeat() string {
	return s.focused
}

// ClearSelection empties the selection set without touching focus.
func (s *Store) ClearSelection() {
	s.selected = nil
	s.save()
}

// CanSelectMore reports whether the selection is below the cap.
func (s *Store) CanSelectMore() bool {
	return len(s.selected) < MaxSelected
}

// IsSelected reports whether id is in the selection set.
func (s *Store) IsSelected(id string) bool {
	for _, selected := range s.selected {
		if selected == id {
			return true
		}
	}
	return false
}

// Selected returns the selection in insertion order.
func (s *Store) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Count is the current selection size.
func (s *Store) Count() int {
	return len(s.selected)
}

// save writes the selection record, fire-and-forget: write failures degrade
// to session-only state and are never surfaced.
func (s *Store) save() {
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	payload, err := json.MarshalIndent(selectionRecord{SelectedSeats: s.Selected()}, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, payload, 0o644)
}
