package record

import (
	"iter"

	"github.com/google/uuid"
)

// View is a filtered, read-only snapshot of a Store. It remembers the
// absolute index of every visible item so that positions picked from the
// view can be mapped back onto the underlying collection.
type View[T Entity] struct {
	items []T
	index []int
}

func (v View[T]) Len() int {
	return len(v.items)
}

// Items returns a copy of the visible records in display order.
func (v View[T]) Items() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

func (v View[T]) At(pos int) (T, bool) {
	if pos < 0 || pos >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[pos], true
}

// Absolute maps a display position to its index in the full collection at
// the time the view was taken.
func (v View[T]) Absolute(pos int) (int, bool) {
	if pos < 0 || pos >= len(v.index) {
		return 0, false
	}
	return v.index[pos], true
}

// IDs resolves display positions to record ids. Out-of-range and duplicate
// positions are skipped.
func (v View[T]) IDs(positions []int) []uuid.UUID {
	seen := make(map[int]struct{}, len(positions))
	ids := make([]uuid.UUID, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(v.items) {
			continue
		}
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		ids = append(ids, v.items[pos].RecordID())
	}
	return ids
}

// All iterates display position and record pairs.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}
