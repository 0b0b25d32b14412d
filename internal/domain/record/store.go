package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Store holds the authoritative ordered collection of one record type and
// mirrors it into a KV namespace after every mutation. The whole collection
// is the unit of durability.
//
// All access is serialised by the store's mutex, which is held across the
// persistence call so snapshots reach the backend in mutation order.
type Store[T Entity] struct {
	mu    sync.RWMutex
	kv    KV
	key   string
	items []T
	log   *slog.Logger
}

// NewStore creates an empty store bound to key. Call Load before use.
func NewStore[T Entity](kv KV, key string, log *slog.Logger) *Store[T] {
	return &Store[T]{
		kv:    kv,
		key:   key,
		items: []T{},
		log:   log.With("component", "record_store", "key", key),
	}
}

func (s *Store[T]) Key() string {
	return s.key
}

// Load replaces the in-memory collection with the persisted one.
// A missing key yields an empty collection, and so does an undecodable blob,
// with an error wrapping ErrDecode. When the backend cannot be read the
// in-memory collection is left as it was (empty before the first Load) and
// the error wraps ErrLoad, so a later mutation does not overwrite the
// durable blob with a partial collection.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("failed to read collection, keeping current state", "error", err, "count", len(s.items))
		return s.snapshot(), fmt.Errorf("%w: %s: %v", ErrLoad, s.key, err)
	}
	if !found {
		s.items = []T{}
		return s.snapshot(), nil
	}

	items, err := decode[T](data)
	if err != nil {
		s.log.Warn("discarding undecodable collection", "error", err, "bytes", len(data))
		s.items = []T{}
		return s.snapshot(), err
	}

	s.items = items
	s.log.Debug("collection loaded", "count", len(items))

	return s.snapshot(), nil
}

// Insert appends item and persists the collection. The append happens even
// when persisting fails; the error then wraps ErrPersist.
func (s *Store[T]) Insert(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)

	return s.persist(ctx)
}

// Update replaces the record with the given id by mutate(record), keeping
// its position. It reports false without persisting when no record has the
// id. A mutator that changes the id is rejected with ErrInvalidData.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, mutate func(T) T) (bool, error) {
	return s.Modify(ctx, id, func(cur T) (T, error) {
		return mutate(cur), nil
	})
}

// Modify is Update with a mutator that may refuse the change. The mutator
// runs under the store lock on the current record; when it returns an
// error nothing is written and the error is returned as is.
func (s *Store[T]) Modify(ctx context.Context, id uuid.UUID, mutate func(T) (T, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next, err := mutate(s.items[i])
	if err != nil {
		return true, err
	}
	if next.RecordID() != id {
		return false, fmt.Errorf("%w: record id is immutable", ErrInvalidData)
	}
	s.items[i] = next

	return true, s.persist(ctx)
}

// Delete removes the records with the given ids and persists when anything
// was removed. Unknown ids are ignored.
func (s *Store[T]) Delete(ctx context.Context, ids ...uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.remove(ids)
	if removed == 0 {
		return 0, nil
	}

	return removed, s.persist(ctx)
}

// DeleteAt removes the records shown at the given display positions of
// view. Positions are resolved through the view, never against the full
// collection directly.
func (s *Store[T]) DeleteAt(ctx context.Context, view View[T], positions ...int) (int, error) {
	return s.Delete(ctx, view.IDs(positions)...)
}

// Filter returns a snapshot view of the records accepted by pred.
// A nil pred accepts everything.
func (s *Store[T]) Filter(pred func(T) bool) View[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View[T]{
		items: make([]T, 0, len(s.items)),
		index: make([]int, 0, len(s.items)),
	}
	for i, item := range s.items {
		if pred == nil || pred(item) {
			v.items = append(v.items, item)
			v.index = append(v.index, i)
		}
	}

	return v
}

// Search is Filter with the case-insensitive text matcher.
func (s *Store[T]) Search(query string) View[T] {
	return s.Filter(Search[T](query))
}

func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// All returns a copy of the collection in order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *Store[T]) indexOf(id uuid.UUID) int {
	for i, item := range s.items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) remove(ids []uuid.UUID) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.items[:0]
	for _, item := range s.items {
		if _, ok := drop[item.RecordID()]; ok {
			continue
		}
		kept = append(kept, item)
	}
	removed := len(s.items) - len(kept)

	// clear the tail so dropped records can be collected
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept

	return removed
}

func (s *Store[T]) snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// persist must be called with s.mu held.
func (s *Store[T]) persist(ctx context.Context) error {
	data, err := Encode(s.items)
	if err != nil {
		s.log.Warn("failed to encode collection", "error", err)
		return fmt.Errorf("%w: %s: %v", ErrPersist, s.key, err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.log.Warn("failed to persist collection", "error", err, "count", len(s.items))
		return fmt.Errorf("%w: %s: %v", ErrPersist, s.key, err)
	}

	return nil
}

// Encode serialises a collection into its stored form.
func Encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// Decode parses a stored collection. Failures wrap ErrDecode.
func Decode[T any](data []byte) ([]T, error) {
	return decode[T](data)
}

func decode[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return []T{}, fmt.Errorf("%w: offset %d: %v", ErrDecode, syntaxErr.Offset, err)
		}
		return []T{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
