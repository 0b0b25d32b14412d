package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"substring ignoring case", "stand", []string{"Weekly Standup"}, true},
		{"upper case query", "WEEKLY", []string{"Weekly Standup"}, true},
		{"no match", "xyz", []string{"Weekly Standup"}, false},
		{"empty query matches everything", "", []string{"Weekly Standup"}, true},
		{"blank query is not empty", " ", []string{"Groceries"}, false},
		{"trailing space is kept", "up ", []string{"Weekly Standup"}, false},
		{"inner space matches", "ly st", []string{"Weekly Standup"}, true},
		{"second field", "milk", []string{"Shopping", "buy Milk"}, true},
		{"no fields", "a", nil, false},
		{"non ascii", "ÄPFEL", []string{"äpfel kaufen"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.query, tt.fields...))
		})
	}
}

func TestSearch_FieldsPerType(t *testing.T) {
	note := Note{Title: "Ideas", Body: "rewrite the parser"}
	assert.True(t, Search[Note]("PARSER")(note))

	capture := Capture{Title: "Thought", Content: "call the plumber"}
	assert.True(t, Search[Capture]("plumber")(capture))

	// events, whiteboards and todos only search the title
	assert.False(t, Search[Event]("Work")(Event{Title: "Standup", Calendar: "Work"}))
	assert.True(t, Search[Whiteboard]("sketch")(Whiteboard{Title: "Sketch"}))
	assert.True(t, Search[TodoItem]("gro")(TodoItem{Title: "Groceries"}))
}
