package screen

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"projectx/internal/domain/record"
)

type Counter interface {
	Counts() map[record.RecType]int
}

type output struct {
	Body []Screen
}

// Screen describes one tab of the workspace.
type Screen struct {
	Type  record.RecType `json:"type"`
	Name  string         `json:"name" example:"Notes"`
	Key   string         `json:"key" example:"Notes" doc:"Storage key of the collection"`
	Count int            `json:"count"`
}

type Handler struct {
	counter    Counter
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(counter Counter, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		counter:    counter,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "screens-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/screens",
		Summary:     "Workspace screens with record counts",
		Tags:        []string{"screens"},
		Middlewares: h.middleware,
	}, h.list)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*output, error) {
	counts := h.counter.Counts()
	screens := make([]Screen, 0, len(record.RecTypes))
	for _, typ := range record.RecTypes {
		screens = append(screens, Screen{
			Type:  typ,
			Name:  typ.DisplayName(),
			Key:   typ.Key(),
			Count: counts[typ],
		})
	}
	return &output{Body: screens}, nil
}
