package record

import (
	"time"

	"github.com/google/uuid"
)

// Factory builds new, not yet persisted records with fresh ids and the
// defaults each screen's create form starts from.
type Factory struct {
	now   func() time.Time
	newID func() uuid.UUID
}

func NewFactory() *Factory {
	return &Factory{
		now:   func() time.Time { return time.Now().UTC().Round(0) },
		newID: uuid.New,
	}
}

// NewFactoryWithClock is NewFactory with a fixed time source.
func NewFactoryWithClock(now func() time.Time) *Factory {
	f := NewFactory()
	f.now = now
	return f
}

func (f *Factory) Now() time.Time {
	return f.now()
}

// Event starts and ends now on the given calendar.
func (f *Factory) Event(title, calendar string) Event {
	now := f.now()
	return Event{
		ID:       f.newID(),
		Title:    title,
		Start:    now,
		End:      now,
		Calendar: calendar,
	}
}

func (f *Factory) Note(title, body string) Note {
	return Note{
		ID:       f.newID(),
		Title:    title,
		Body:     body,
		Modified: f.now(),
	}
}

func (f *Factory) Capture(kind CaptureKind, title string) Capture {
	return Capture{
		ID:      f.newID(),
		Title:   title,
		Kind:    kind,
		Created: f.now(),
	}
}

func (f *Factory) Whiteboard(title string) Whiteboard {
	return Whiteboard{
		ID:      f.newID(),
		Title:   title,
		Created: f.now(),
	}
}

func (f *Factory) Todo(title string) TodoItem {
	return TodoItem{
		ID:      f.newID(),
		Title:   title,
		Created: f.now(),
	}
}
