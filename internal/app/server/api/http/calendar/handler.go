package calendar

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"projectx/internal/capability"
	"projectx/internal/domain/record"
)

const dateLayout = "2006-01-02"

// DayService is the calendar screen.
type DayService interface {
	Day(ctx context.Context, day time.Time) ([]record.Event, error)
	DefaultCalendar() string
}

type Handler struct {
	service    DayService
	loc        *time.Location
	now        func() time.Time
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service DayService, loc *time.Location, log *slog.Logger, mws huma.Middlewares) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		service:    service,
		loc:        loc,
		now:        time.Now,
		log:        log.With("component", "calendar_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.dayOp(), h.day)
}

func (h *Handler) dayOp() huma.Operation {
	return huma.Operation{
		OperationID: "calendar-day",
		Method:      http.MethodGet,
		Path:        "/api/v1/calendar/day",
		Summary:     "Events of one day",
		Description: "Lists the events overlapping the given day. Answers 403 when calendar access is denied.",
		Tags:        []string{"calendar"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) day(ctx context.Context, input *dayInput) (*dayOutput, error) {
	day := h.now().In(h.loc)
	if input.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, input.Date, h.loc)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid date", err)
		}
		day = parsed
	}

	events, err := h.service.Day(ctx, day)
	if errors.Is(err, capability.ErrAccessDenied) {
		return nil, huma.Error403Forbidden("calendar access denied")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load events")
	}

	return &dayOutput{
		Body: DayResponse{
			Date:     day.Format(dateLayout),
			Calendar: h.service.DefaultCalendar(),
			Events:   events,
		},
	}, nil
}
