package record

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T any](t *testing.T, item T) T {
	t.Helper()
	data, err := Encode([]T{item})
	require.NoError(t, err)
	items, err := Decode[T](data)
	require.NoError(t, err)
	require.Len(t, items, 1)
	return items[0]
}

func TestRoundTrip(t *testing.T) {
	start := time.Date(2025, 4, 24, 9, 0, 0, 0, time.UTC)
	photo := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}

	t.Run("event", func(t *testing.T) {
		e := Event{ID: uuid.New(), Title: "Weekly Standup", Start: start, End: start.Add(30 * time.Minute), Calendar: "Work"}
		assert.Equal(t, e, roundTrip(t, e))
	})
	t.Run("note", func(t *testing.T) {
		n := Note{ID: uuid.New(), Title: "Ideas", Body: "line one\nline two ✓", Modified: start.Add(1500 * time.Millisecond)}
		assert.Equal(t, n, roundTrip(t, n))
	})
	t.Run("text capture", func(t *testing.T) {
		c := Capture{ID: uuid.New(), Title: "Thought", Kind: CaptureText, Content: "remember the milk", Created: start}
		assert.Equal(t, c, roundTrip(t, c))
	})
	t.Run("photo capture", func(t *testing.T) {
		c := Capture{ID: uuid.New(), Title: "Receipt", Kind: CapturePhoto, ImageData: photo, Created: start}
		assert.Equal(t, c, roundTrip(t, c))
	})
	t.Run("audio capture", func(t *testing.T) {
		c := Capture{ID: uuid.New(), Title: "Memo", Kind: CaptureAudio, AudioPath: "/media/recording.m4a", Created: start}
		assert.Equal(t, c, roundTrip(t, c))
	})
	t.Run("whiteboard", func(t *testing.T) {
		w := Whiteboard{ID: uuid.New(), Title: "Sketch", Drawing: []byte("opaque-ink-payload\x00\x01"), Created: start}
		assert.Equal(t, w, roundTrip(t, w))
	})
	t.Run("empty whiteboard", func(t *testing.T) {
		w := Whiteboard{ID: uuid.New(), Title: "Blank", Created: start}
		assert.Equal(t, w, roundTrip(t, w))
	})
	t.Run("empty payloads keep their shape", func(t *testing.T) {
		c := Capture{ID: uuid.New(), Title: "Receipt", Kind: CapturePhoto, ImageData: []byte{}, Created: start}
		got := roundTrip(t, c)
		assert.Equal(t, c, got)
		assert.NotNil(t, got.ImageData)

		w := Whiteboard{ID: uuid.New(), Title: "Blank", Drawing: []byte{}, Created: start}
		assert.Equal(t, w, roundTrip(t, w))
	})
	t.Run("todo", func(t *testing.T) {
		td := TodoItem{ID: uuid.New(), Title: "Groceries", Completed: true, Created: start}
		assert.Equal(t, td, roundTrip(t, td))
	})
}

func TestEncode_NilCollection(t *testing.T) {
	data, err := Encode[Note](nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	items, err := Decode[Note]([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDecode_Invalid(t *testing.T) {
	items, err := Decode[Event]([]byte("[{"))
	assert.ErrorIs(t, err, ErrDecode)
	assert.Empty(t, items)
}

func TestFactory_Defaults(t *testing.T) {
	f := testFactory()

	e := f.Event("Dentist", "Home")
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, fixedNow, e.Start)
	assert.Equal(t, fixedNow, e.End)
	assert.Equal(t, "Home", e.Calendar)

	c := f.Capture(CaptureAudio, "")
	assert.Equal(t, CaptureAudio, c.Kind)
	assert.Empty(t, c.Content)
	assert.Equal(t, fixedNow, c.Created)

	assert.NotEqual(t, f.Todo("a").ID, f.Todo("a").ID)
	assert.False(t, f.Todo("a").Completed)
}

func TestEvent_Validate(t *testing.T) {
	start := fixedNow
	assert.NoError(t, Event{Start: start, End: start}.Validate())
	assert.NoError(t, Event{Start: start, End: start.Add(time.Hour)}.Validate())
	assert.ErrorIs(t, Event{Start: start, End: start.Add(-time.Minute)}.Validate(), ErrInvalidData)
}

func TestEvent_Overlaps(t *testing.T) {
	day := time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", day.Add(9 * time.Hour), day.Add(10 * time.Hour), true},
		{"starts the day before", day.Add(-2 * time.Hour), day.Add(time.Hour), true},
		{"ends exactly at start of day", day.Add(-time.Hour), day, false},
		{"starts at next day", next, next.Add(time.Hour), false},
		{"zero length at midnight", day, day, true},
		{"spans the whole day", day.Add(-time.Hour), next.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, e.Overlaps(day, next))
		})
	}
}

func TestCapture_Payload(t *testing.T) {
	base := Capture{Content: "hello", ImageData: []byte{1, 2}, AudioPath: "/tmp/a.m4a"}

	tests := []struct {
		kind CaptureKind
		want CapturePayload
		icon string
	}{
		{CaptureText, TextPayload{Content: "hello"}, "text.bubble"},
		{CapturePhoto, PhotoPayload{Image: []byte{1, 2}}, "photo"},
		{CaptureAudio, AudioPayload{Path: "/tmp/a.m4a"}, "mic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			c := base
			c.Kind = tt.kind
			assert.Equal(t, tt.want, c.Payload())
			assert.Equal(t, tt.icon, tt.kind.Icon())
			assert.NoError(t, c.WithKind(tt.kind).Validate())
		})
	}
}

func TestCapture_Validate(t *testing.T) {
	tests := []struct {
		name    string
		capture Capture
		wantErr bool
	}{
		{"text", Capture{Kind: CaptureText, Content: "hello"}, false},
		{"photo with image", Capture{Kind: CapturePhoto, ImageData: []byte{1}}, false},
		{"audio with recording", Capture{Kind: CaptureAudio, AudioPath: "/tmp/a.m4a"}, false},
		{"unknown kind", Capture{Kind: "video"}, true},
		{"text with image", Capture{Kind: CaptureText, ImageData: []byte{1}}, true},
		{"text with recording", Capture{Kind: CaptureText, AudioPath: "/tmp/a.m4a"}, true},
		{"photo with recording", Capture{Kind: CapturePhoto, AudioPath: "/tmp/a.m4a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.capture.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidData)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCapture_WithKind(t *testing.T) {
	c := Capture{Kind: CapturePhoto, Content: "note", ImageData: []byte{1, 2}, AudioPath: "/tmp/a.m4a"}

	text := c.WithKind(CaptureText)
	assert.Nil(t, text.ImageData)
	assert.Empty(t, text.AudioPath)
	assert.Equal(t, "note", text.Content)

	photo := c.WithKind(CapturePhoto)
	assert.Equal(t, []byte{1, 2}, photo.ImageData)
	assert.Empty(t, photo.AudioPath)

	audio := c.WithKind(CaptureAudio)
	assert.Nil(t, audio.ImageData)
	assert.Equal(t, "/tmp/a.m4a", audio.AudioPath)
}

func TestRecType(t *testing.T) {
	for _, typ := range RecTypes {
		assert.NoError(t, typ.Validate())
		assert.NotEmpty(t, typ.Key())
	}
	assert.Equal(t, "Notes", RecTypeNote.Key())
	assert.Equal(t, "Calendar", RecTypeEvent.DisplayName())
	assert.Error(t, RecType("gallery").Validate())
}

func TestFingerprint(t *testing.T) {
	assert.Empty(t, Fingerprint(nil))
	a := Fingerprint([]byte("drawing"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, Fingerprint([]byte("drawing")))
	assert.NotEqual(t, a, Fingerprint([]byte("drawing2")))
}
