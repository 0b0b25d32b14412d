package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"projectx/internal/capability"
	"projectx/internal/domain/record"
)

type MockDayService struct {
	mock.Mock
}

func (m *MockDayService) Day(ctx context.Context, day time.Time) ([]record.Event, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]record.Event), args.Error(1)
}

func (m *MockDayService) DefaultCalendar() string {
	return m.Called().String(0)
}

func setup(t *testing.T, svc DayService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	h := NewHandler(svc, time.UTC, slog.Default(), huma.Middlewares{})
	h.now = func() time.Time { return time.Date(2025, 4, 24, 15, 0, 0, 0, time.UTC) }
	h.SetupRoutes(api)
	return api
}

func TestHandler_Day(t *testing.T) {
	day := time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC)
	standup := record.Event{ID: uuid.New(), Title: "Standup", Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour), Calendar: "Work"}

	svc := new(MockDayService)
	svc.On("Day", mock.Anything, day).Return([]record.Event{standup}, nil).Once()
	svc.On("Day", mock.Anything, day.Add(15*time.Hour)).Return([]record.Event{standup}, nil).Once()
	svc.On("DefaultCalendar").Return("Work")
	api := setup(t, svc)

	for _, path := range []string{"/api/v1/calendar/day?date=2025-04-24", "/api/v1/calendar/day"} {
		resp := api.Get(path)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		var body DayResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "2025-04-24", body.Date)
		assert.Equal(t, "Work", body.Calendar)
		assert.Equal(t, []record.Event{standup}, body.Events)
	}
	svc.AssertExpectations(t)
}

func TestHandler_DayErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"access denied", capability.ErrAccessDenied, http.StatusForbidden},
		{"query failed", errors.New("store offline"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockDayService)
			svc.On("Day", mock.Anything, mock.Anything).Return([]record.Event{}, tt.err)
			api := setup(t, svc)

			resp := api.Get("/api/v1/calendar/day")
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestHandler_InvalidDate(t *testing.T) {
	api := setup(t, new(MockDayService))

	resp := api.Get("/api/v1/calendar/day?date=24.04.2025")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
