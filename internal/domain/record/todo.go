package record

import (
	"time"

	"github.com/google/uuid"
)

type TodoItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Created   time.Time `json:"created_at"`
}

func (t TodoItem) RecordID() uuid.UUID {
	return t.ID
}

func (t TodoItem) SearchFields() []string {
	return []string{t.Title}
}

func (t TodoItem) Validate() error {
	return nil
}

// Toggle returns a copy with the completed flag flipped.
func (t TodoItem) Toggle() TodoItem {
	t.Completed = !t.Completed
	return t
}
