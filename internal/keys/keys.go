// Package keys discovers the column names of a set of rows and holds the
// state of a column selection.
package keys

import "github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"

// Discover returns every key that appears in rows, in first-seen order:
// rows are scanned in order and each row's keys in the row's own order.
func Discover(rows []types.Row) []string {
	seen := make(map[string]bool)
	var discovered []string

	for _, row := range rows {
		for _, key := range row.Keys() {
			if !seen[key] {
				seen[key] = true
				discovered = append(discovered, key)
			}
		}
	}

	return discovered
}

// Selection is the state of an interactive column choice: a cursor over the
// discovered keys and the set of keys currently selected. Every key starts
// selected. The cursor wraps at both ends.
//
// A Selection is not safe for concurrent use; one event loop owns it.
type Selection struct {
	keys     []string
	cursor   int
	selected map[string]bool
}

// NewSelection returns a selection over keys with every key selected and the
// cursor on the first key.
func NewSelection(keys []string) *Selection {
	s := &Selection{
		keys:     append([]string(nil), keys...),
		selected: make(map[string]bool, len(keys)),
	}
	for _, key := range keys {
		s.selected[key] = true
	}
	return s
}

// Keys returns the keys in discovery order.
func (s *Selection) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of keys.
func (s *Selection) Len() int {
	return len(s.keys)
}

// Cursor returns the index of the key under the cursor.
func (s *Selection) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor to the previous key, wrapping to the last.
func (s *Selection) MoveUp() {
	if n := len(s.keys); n > 0 {
		s.cursor = (s.cursor - 1 + n) % n
	}
}

// MoveDown moves the cursor to the next key, wrapping to the first.
func (s *Selection) MoveDown() {
	if n := len(s.keys); n > 0 {
		s.cursor = (s.cursor + 1) % n
	}
}

// Toggle flips whether the key under the cursor is selected.
func (s *Selection) Toggle() {
	if len(s.keys) == 0 {
		return
	}
	key := s.keys[s.cursor]
	s.selected[key] = !s.selected[key]
}

// IsSelected reports whether the key at index i is selected.
func (s *Selection) IsSelected(i int) bool {
	if i < 0 || i >= len(s.keys) {
		return false
	}
	return s.selected[s.keys[i]]
}

// Selected returns the selected keys in discovery order.
func (s *Selection) Selected() []string {
	out := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		if s.selected[key] {
			out = append(out, key)
		}
	}
	return out
}
