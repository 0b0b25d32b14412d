package record

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// RecType identifies one screen of the workspace and the record type it stores.
type RecType string

const (
	RecTypeEvent      RecType = "event"
	RecTypeNote       RecType = "note"
	RecTypeCapture    RecType = "capture"
	RecTypeWhiteboard RecType = "whiteboard"
	RecTypeTodo       RecType = "todo"
)

// RecTypes lists every screen in tab order.
var RecTypes = []RecType{
	RecTypeEvent,
	RecTypeNote,
	RecTypeCapture,
	RecTypeWhiteboard,
	RecTypeTodo,
}

func (RecType) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: "string",
		Enum: []any{
			string(RecTypeEvent),
			string(RecTypeNote),
			string(RecTypeCapture),
			string(RecTypeWhiteboard),
			string(RecTypeTodo),
		},
		Description: "Workspace screen / record type",
		Examples:    []any{RecTypeNote},
	}
}

// Validate reports whether t names a known screen.
func (t RecType) Validate() error {
	switch t {
	case RecTypeEvent, RecTypeNote, RecTypeCapture, RecTypeWhiteboard, RecTypeTodo:
		return nil
	}
	return fmt.Errorf("unknown record type: %s", t)
}

func (t RecType) String() string {
	return string(t)
}

// Key returns the durable namespace key the screen's collection is stored under.
func (t RecType) Key() string {
	switch t {
	case RecTypeEvent:
		return "Events"
	case RecTypeNote:
		return "Notes"
	case RecTypeCapture:
		return "Captures"
	case RecTypeWhiteboard:
		return "Whiteboards"
	case RecTypeTodo:
		return "Todos"
	default:
		return ""
	}
}

// DisplayName returns the tab title.
func (t RecType) DisplayName() string {
	switch t {
	case RecTypeEvent:
		return "Calendar"
	case RecTypeNote:
		return "Notes"
	case RecTypeCapture:
		return "Capture"
	case RecTypeWhiteboard:
		return "Whiteboard"
	case RecTypeTodo:
		return "Todo"
	default:
		return "Unknown"
	}
}
