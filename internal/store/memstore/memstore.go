// Package memstore holds the session's todo sequences in memory, one ordered
// sequence per calendar day. Nothing survives the process: the store is the
// sole source of truth for exactly one run of the UI.
package memstore

import (
	"slices"

	"github.com/idilsaglam/haru/internal/model"
)

// Store maps day keys (YYYY-MM-DD) to ordered item sequences. It is owned by
// the single UI goroutine; all mutation is synchronous, so there is no lock.
type Store struct {
	days    map[string][]model.Item
	version uint64
}

func New() *Store {
	return &Store{days: make(map[string][]model.Item)}
}

// Version is a monotonic change counter. It bumps exactly once per effective
// mutation, so callers can cheap-compare to decide whether to rebuild
// derived views.
func (s *Store) Version() uint64 { return s.version }

// Items returns a snapshot copy of the day's sequence. Callers never alias
// store internals.
func (s *Store) Items(day string) []model.Item {
	return slices.Clone(s.days[day])
}

// Len reports how many items the day holds.
func (s *Store) Len(day string) int { return len(s.days[day]) }

// Append adds the item at the end of the day's sequence. Items are only ever
// appended, never inserted mid-list.
func (s *Store) Append(day string, it model.Item) {
	s.days[day] = append(s.days[day], it)
	s.version++
}

// Toggle flips the item's completion and propagates through its tree. The
// day's sequence is swapped in whole, so observers see a single atomic
// update. A toggle of an unknown id changes nothing and does not bump the
// version.
func (s *Store) Toggle(day, id string) {
	cur := s.days[day]
	if !slices.ContainsFunc(cur, func(it model.Item) bool { return it.ID == id }) {
		return
	}
	s.days[day] = model.Toggle(cur, id)
	s.version++
}

// Stats counts completed and pending items for the day's header line.
func (s *Store) Stats(day string) (done, pending int) {
	for _, it := range s.days[day] {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
