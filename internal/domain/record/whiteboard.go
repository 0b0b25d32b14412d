package record

import (
	"time"

	"github.com/google/uuid"
)

// Whiteboard holds an opaque drawing payload produced by the host drawing
// surface. The payload is stored and returned byte-for-byte.
type Whiteboard struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Drawing []byte    `json:"drawing"`
	Created time.Time `json:"created_at"`
}

func (w Whiteboard) RecordID() uuid.UUID {
	return w.ID
}

func (w Whiteboard) SearchFields() []string {
	return []string{w.Title}
}

func (w Whiteboard) Validate() error {
	return nil
}
