// Package collision tracks unit names by ID and rejects IDs claimed by two
// different names.
package collision

import (
	"fmt"

	"github.com/arloliu/measure/errs"
)

// Tracker assigns dense indexes to unit IDs in first-seen order and keeps the
// name behind each ID.
type Tracker struct {
	index map[uint64]int
	names []string
	ids   []uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		index: make(map[uint64]int),
		names: make([]string, 0),
		ids:   make([]uint64, 0),
	}
}

// Track records name under id.
//
// Returns:
//   - int: the dense index of id
//   - bool: true when id was seen for the first time
//   - error: errs.ErrInvalidUnitName for an empty name, errs.ErrHashCollision
//     when id is already held by a different name
func (t *Tracker) Track(name string, id uint64) (int, bool, error) {
	if name == "" {
		return 0, false, errs.ErrInvalidUnitName
	}

	if idx, ok := t.index[id]; ok {
		if t.names[idx] != name {
			return 0, false, fmt.Errorf("%w: %q and %q share id 0x%016x", errs.ErrHashCollision, t.names[idx], name, id)
		}

		return idx, false, nil
	}

	idx := len(t.names)
	t.index[id] = idx
	t.names = append(t.names, name)
	t.ids = append(t.ids, id)

	return idx, true, nil
}

// Lookup returns the name recorded for id.
func (t *Tracker) Lookup(id uint64) (string, bool) {
	idx, ok := t.index[id]
	if !ok {
		return "", false
	}

	return t.names[idx], true
}

// Index returns the dense index assigned to id.
func (t *Tracker) Index(id uint64) (int, bool) {
	idx, ok := t.index[id]
	return idx, ok
}

// Names returns the tracked names in first-seen order.
func (t *Tracker) Names() []string {
	return t.names
}

// IDs returns the tracked IDs in first-seen order.
func (t *Tracker) IDs() []uint64 {
	return t.ids
}

// Count returns the number of tracked IDs.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset forgets every ID while keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.index)
	t.names = t.names[:0]
	t.ids = t.ids[:0]
}
