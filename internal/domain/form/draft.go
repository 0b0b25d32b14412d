// Package form holds the uncommitted copy of a record while it is edited.
// Nothing reaches the store until Save.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"projectx/internal/domain/record"
)

var ErrDraftClosed = errors.New("draft already saved or cancelled")

// Saver is the part of record.Store a draft commits through.
type Saver[T record.Entity] interface {
	Insert(ctx context.Context, item T) error
	Update(ctx context.Context, id uuid.UUID, mutate func(T) T) (bool, error)
}

type Draft[T record.Entity] struct {
	store   Saver[T]
	value   T
	isNew   bool
	closed  bool
	onClose func()
}

// New opens a draft for a record that is not in the store yet.
func New[T record.Entity](store Saver[T], value T) *Draft[T] {
	return &Draft[T]{store: store, value: value, isNew: true}
}

// Edit opens a draft over a copy of an existing record.
func Edit[T record.Entity](store Saver[T], existing T) *Draft[T] {
	return &Draft[T]{store: store, value: existing}
}

// OnClose registers a callback run after a successful Save or a Cancel.
func (d *Draft[T]) OnClose(fn func()) *Draft[T] {
	d.onClose = fn
	return d
}

func (d *Draft[T]) Value() T {
	return d.value
}

func (d *Draft[T]) IsNew() bool {
	return d.isNew
}

func (d *Draft[T]) Closed() bool {
	return d.closed
}

// Set applies fn to the local copy only.
func (d *Draft[T]) Set(fn func(T) T) error {
	if d.closed {
		return ErrDraftClosed
	}
	d.value = fn(d.value)
	return nil
}

// Save validates the copy and hands it to the store: Insert for a new
// record, whole-record Update otherwise. On a validation error, or when the
// edited record has disappeared from the store, the draft stays open.
// A persistence failure still closes the draft because the store has
// already taken the change in memory; the error is returned.
func (d *Draft[T]) Save(ctx context.Context) error {
	if d.closed {
		return ErrDraftClosed
	}
	if err := d.value.Validate(); err != nil {
		return err
	}

	var err error
	if d.isNew {
		err = d.store.Insert(ctx, d.value)
	} else {
		var found bool
		value := d.value
		found, err = d.store.Update(ctx, value.RecordID(), func(T) T { return value })
		if err == nil && !found {
			return fmt.Errorf("%w: %s", record.ErrNotFound, value.RecordID())
		}
		if errors.Is(err, record.ErrInvalidData) {
			return err
		}
	}

	d.close()
	return err
}

// Cancel discards the copy without touching the store.
func (d *Draft[T]) Cancel() {
	if d.closed {
		return
	}
	d.close()
}

func (d *Draft[T]) close() {
	d.closed = true
	if d.onClose != nil {
		d.onClose()
	}
}
