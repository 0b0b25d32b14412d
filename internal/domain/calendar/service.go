package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"projectx/internal/capability"
	"projectx/internal/domain/record"
)

// Service is the calendar screen: a day view over the host calendar and
// event creation through it.
type Service struct {
	cal capability.Calendar
	loc *time.Location
	log *slog.Logger
}

func NewService(cal capability.Calendar, loc *time.Location, log *slog.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		cal: cal,
		loc: loc,
		log: log.With("component", "calendar_service"),
	}
}

// DayBounds returns [start of day, start of next day) for t in the
// service's location.
func (s *Service) DayBounds(t time.Time) (time.Time, time.Time) {
	t = t.In(s.loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// Day lists the events overlapping the given day. When calendar access is
// refused it returns an empty list together with capability.ErrAccessDenied.
func (s *Service) Day(ctx context.Context, day time.Time) ([]record.Event, error) {
	if err := s.cal.RequestAccess(ctx); err != nil {
		if errors.Is(err, capability.ErrAccessDenied) {
			s.log.Info("calendar access denied, day view stays empty")
		}
		return []record.Event{}, err
	}

	from, to := s.DayBounds(day)
	events, err := s.cal.EventsBetween(ctx, from, to)
	if err != nil {
		s.log.Error("failed to query events", "from", from, "to", to, "error", err)
		return []record.Event{}, fmt.Errorf("query events: %w", err)
	}
	if events == nil {
		events = []record.Event{}
	}

	return events, nil
}

// Add validates and saves a new event, filling in the default calendar.
func (s *Service) Add(ctx context.Context, e record.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := s.cal.RequestAccess(ctx); err != nil {
		return err
	}
	if e.Calendar == "" {
		e.Calendar = s.cal.DefaultCalendar()
	}
	if err := s.cal.Save(ctx, e); err != nil {
		s.log.Error("failed to save event", "event_id", e.ID, "error", err)
		return fmt.Errorf("save event: %w", err)
	}

	s.log.Debug("event saved", "event_id", e.ID, "calendar", e.Calendar)
	return nil
}

func (s *Service) DefaultCalendar() string {
	return s.cal.DefaultCalendar()
}
