package health

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"

	"projectx/internal/domain/record"
)

type staticCounter map[record.RecType]int

func (c staticCounter) Counts() map[record.RecType]int {
	return c
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name            string
		counts          staticCounter
		expectedStatus  string
		expectedRecords map[string]int
	}{
		{
			name:            "empty workspace",
			counts:          staticCounter{},
			expectedStatus:  "OK",
			expectedRecords: map[string]int{},
		},
		{
			name:            "records keyed by storage key",
			counts:          staticCounter{record.RecTypeTodo: 3, record.RecTypeNote: 1},
			expectedStatus:  "OK",
			expectedRecords: map[string]int{"Todos": 3, "Notes": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(tt.counts, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
			assert.Equal(t, tt.expectedRecords, output.Body.Records)
			assert.NotEmpty(t, output.Body.Uptime)
		})
	}
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(staticCounter{}, slog.Default(), huma.Middlewares{})

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
	assert.False(t, handler.started.IsZero())
}
