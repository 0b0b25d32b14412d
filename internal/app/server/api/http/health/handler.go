package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"projectx/internal/domain/record"
)

type Counter interface {
	Counts() map[record.RecType]int
}

type Handler struct {
	counter    Counter
	started    time.Time
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(counter Counter, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		counter:    counter,
		started:    time.Now(),
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	records := make(map[string]int, len(record.RecTypes))
	for typ, n := range h.counter.Counts() {
		records[typ.Key()] = n
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Uptime:  time.Since(h.started).Round(time.Second).String(),
			Records: records,
		},
	}, nil
}
