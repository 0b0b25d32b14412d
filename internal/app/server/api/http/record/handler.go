package record

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"projectx/internal/capability"
	"projectx/internal/domain/record"
)

// Handler serves list, find, create, update and delete for one screen.
type Handler[T record.Entity, P Payload[T]] struct {
	typ        record.RecType
	path       string
	store      *record.Store[T]
	factory    *record.Factory
	insert     func(context.Context, T) error
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler[T record.Entity, P Payload[T]](
	typ record.RecType,
	path string,
	store *record.Store[T],
	factory *record.Factory,
	log *slog.Logger,
	mws huma.Middlewares,
) *Handler[T, P] {
	return &Handler[T, P]{
		typ:        typ,
		path:       path,
		store:      store,
		factory:    factory,
		insert:     store.Insert,
		log:        log.With("component", "record_handler", "type", typ),
		middleware: mws,
	}
}

// WithInsert routes creation through fn instead of the store, e.g. to go
// through the calendar for events.
func (h *Handler[T, P]) WithInsert(fn func(context.Context, T) error) *Handler[T, P] {
	h.insert = fn
	return h
}

func (h *Handler[T, P]) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler[T, P]) list(_ context.Context, input *listInput) (*listOutput[T], error) {
	view := h.store.Search(input.Query)
	return &listOutput[T]{
		Body: listResponse[T]{
			Items: view.Items(),
			Total: h.store.Len(),
		},
	}, nil
}

func (h *Handler[T, P]) find(_ context.Context, input *idInput) (*itemOutput[T], error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	item, ok := h.store.Get(id)
	if !ok {
		return nil, huma.Error404NotFound("record not found")
	}

	return &itemOutput[T]{Body: item}, nil
}

func (h *Handler[T, P]) create(ctx context.Context, input *createInput[P]) (*itemOutput[T], error) {
	item := input.Body.New(h.factory)
	if err := item.Validate(); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	if err := h.insert(ctx, item); err != nil {
		if err := h.mutationError(err, item.RecordID()); err != nil {
			return nil, err
		}
	}

	// the insert hook may fill defaults
	if stored, ok := h.store.Get(item.RecordID()); ok {
		item = stored
	}

	h.log.Debug("record created", "record_id", item.RecordID())
	return &itemOutput[T]{Body: item}, nil
}

func (h *Handler[T, P]) update(ctx context.Context, input *updateInput[P]) (*itemOutput[T], error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	// Apply runs on the current record under the store lock.
	var updated T
	found, err := h.store.Modify(ctx, id, func(cur T) (T, error) {
		next := input.Body.Apply(h.factory, cur)
		if err := next.Validate(); err != nil {
			return cur, err
		}
		updated = next
		return next, nil
	})
	if err != nil {
		if err := h.mutationError(err, id); err != nil {
			return nil, err
		}
	}
	if !found {
		return nil, huma.Error404NotFound("record not found")
	}

	return &itemOutput[T]{Body: updated}, nil
}

func (h *Handler[T, P]) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	n, err := h.store.Delete(ctx, id)
	if err != nil {
		if err := h.mutationError(err, id); err != nil {
			return nil, err
		}
	}
	if n == 0 {
		return nil, huma.Error404NotFound("record not found")
	}

	return nil, nil
}

// mutationError maps store errors to HTTP errors. A failed persist keeps
// the in-memory change, so it is logged and the request still succeeds.
func (h *Handler[T, P]) mutationError(err error, id uuid.UUID) error {
	switch {
	case errors.Is(err, record.ErrPersist):
		h.log.Warn("change kept in memory only", "record_id", id, "error", err)
		return nil
	case errors.Is(err, record.ErrInvalidData):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, capability.ErrAccessDenied):
		return huma.Error403Forbidden("calendar access denied")
	default:
		h.log.Error("failed to save record", "record_id", id, "error", err)
		return huma.Error500InternalServerError("failed to save record")
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, huma.Error422UnprocessableEntity("invalid record id", err)
	}
	return id, nil
}
