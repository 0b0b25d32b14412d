package capability

import (
	"context"
	"fmt"
	"time"

	"projectx/internal/domain/record"
)

// LocalCalendar serves calendar requests from the workspace's own event store.
type LocalCalendar struct {
	events  *record.Store[record.Event]
	granted bool
	name    string
}

func NewLocalCalendar(events *record.Store[record.Event], granted bool, name string) *LocalCalendar {
	if name == "" {
		name = "Personal"
	}
	return &LocalCalendar{
		events:  events,
		granted: granted,
		name:    name,
	}
}

func (c *LocalCalendar) RequestAccess(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.granted {
		return ErrAccessDenied
	}
	return nil
}

func (c *LocalCalendar) EventsBetween(ctx context.Context, from, to time.Time) ([]record.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !c.granted {
		return nil, ErrAccessDenied
	}
	view := c.events.Filter(func(e record.Event) bool {
		return e.Overlaps(from, to)
	})
	return view.Items(), nil
}

func (c *LocalCalendar) Save(ctx context.Context, e record.Event) error {
	if !c.granted {
		return ErrAccessDenied
	}
	if e.Calendar == "" {
		e.Calendar = c.name
	}

	found, err := c.events.Update(ctx, e.ID, func(record.Event) record.Event { return e })
	if err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	if found {
		return nil
	}
	if err := c.events.Insert(ctx, e); err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (c *LocalCalendar) DefaultCalendar() string {
	return c.name
}
