package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry.
type Event struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Calendar string    `json:"calendar,omitempty"`
}

func (e Event) RecordID() uuid.UUID {
	return e.ID
}

func (e Event) SearchFields() []string {
	return []string{e.Title}
}

func (e Event) Validate() error {
	if e.End.Before(e.Start) {
		return fmt.Errorf("%w: event ends before it starts", ErrInvalidData)
	}
	return nil
}

// Overlaps reports whether the event intersects the half-open range [from, to).
// Zero-length events count when they start inside the range.
func (e Event) Overlaps(from, to time.Time) bool {
	if !e.Start.Before(to) {
		return false
	}
	return e.End.After(from) || !e.Start.Before(from)
}

// Duration is the time between start and end.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
