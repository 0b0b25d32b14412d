package record

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"projectx/internal/domain/record"
)

// ToggleHandler flips the completion flag of a todo item.
type ToggleHandler struct {
	store      *record.Store[record.TodoItem]
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewToggleHandler(store *record.Store[record.TodoItem], log *slog.Logger, mws huma.Middlewares) *ToggleHandler {
	return &ToggleHandler{
		store:      store,
		log:        log.With("component", "todo_toggle_handler"),
		middleware: mws,
	}
}

func (h *ToggleHandler) SetupRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "todo-toggle",
		Method:      http.MethodPost,
		Path:        "/api/v1/todos/{id}/toggle",
		Summary:     "Toggle a todo item",
		Tags:        []string{string(record.RecTypeTodo)},
		Middlewares: h.middleware,
	}, h.toggle)
}

func (h *ToggleHandler) toggle(ctx context.Context, input *idInput) (*itemOutput[record.TodoItem], error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	found, err := h.store.Update(ctx, id, record.TodoItem.Toggle)
	if err != nil && !errors.Is(err, record.ErrPersist) {
		return nil, huma.Error500InternalServerError("failed to toggle todo")
	}
	if err != nil {
		h.log.Warn("change kept in memory only", "record_id", id, "error", err)
	}
	if !found {
		return nil, huma.Error404NotFound("record not found")
	}

	item, _ := h.store.Get(id)
	return &itemOutput[record.TodoItem]{Body: item}, nil
}
