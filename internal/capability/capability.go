// Package capability declares the host services the workspace delegates to
// (calendar, photo picking, audio recording and playback, drawing) and
// ships simple local adapters for them. Every request is one-shot and
// cancelable through its context; denial and "nothing selected" are
// explicit error outcomes.
package capability

import (
	"context"
	"errors"
	"time"

	"projectx/internal/domain/record"
)

var (
	ErrAccessDenied = errors.New("access denied")
	ErrNoSelection  = errors.New("nothing selected")
	ErrUnsupported  = errors.New("capability not available")
	ErrNotRecording = errors.New("no recording in progress")
)

// Calendar is the host calendar store.
type Calendar interface {
	// RequestAccess returns ErrAccessDenied when the user refuses.
	RequestAccess(ctx context.Context) error
	// EventsBetween returns events overlapping [from, to).
	EventsBetween(ctx context.Context, from, to time.Time) ([]record.Event, error)
	Save(ctx context.Context, e record.Event) error
	DefaultCalendar() string
}

// PhotoPicker returns the bytes of a user-selected image, or ErrNoSelection.
type PhotoPicker interface {
	PickPhoto(ctx context.Context) ([]byte, error)
}

type AudioRecorder interface {
	Start(ctx context.Context, path string) error
	Stop() error
}

type AudioPlayer interface {
	Play(ctx context.Context, path string) error
}

// DrawingSurface exchanges an opaque drawing payload with the host canvas.
// The payload is never interpreted.
type DrawingSurface interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, payload []byte) error
}
