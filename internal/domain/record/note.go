package record

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Modified time.Time `json:"modified_at"`
}

func (n Note) RecordID() uuid.UUID {
	return n.ID
}

func (n Note) SearchFields() []string {
	return []string{n.Title, n.Body}
}

func (n Note) Validate() error {
	return nil
}

// Touch returns a copy of the note stamped as modified at t.
func (n Note) Touch(t time.Time) Note {
	n.Modified = t
	return n
}
