package record

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CaptureKind tags what a quick capture holds.
type CaptureKind string

const (
	CaptureText  CaptureKind = "text"
	CapturePhoto CaptureKind = "photo"
	CaptureAudio CaptureKind = "audio"
)

func (k CaptureKind) Validate() error {
	switch k {
	case CaptureText, CapturePhoto, CaptureAudio:
		return nil
	}
	return fmt.Errorf("%w: unknown capture kind %q", ErrInvalidData, string(k))
}

// Icon is the row symbol shown next to a capture of this kind.
func (k CaptureKind) Icon() string {
	switch k {
	case CapturePhoto:
		return "photo"
	case CaptureAudio:
		return "mic"
	default:
		return "text.bubble"
	}
}

// Label is the menu entry used to start a capture of this kind.
func (k CaptureKind) Label() string {
	switch k {
	case CapturePhoto:
		return "Photo"
	case CaptureAudio:
		return "Audio Note"
	default:
		return "Text Note"
	}
}

// Capture is a quick text, photo or audio note.
type Capture struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Kind      CaptureKind `json:"type"`
	Content   string      `json:"content"`
	ImageData []byte      `json:"image_data"`
	AudioPath string      `json:"audio_path,omitempty"`
	Created   time.Time   `json:"created_at"`
}

func (c Capture) RecordID() uuid.UUID {
	return c.ID
}

func (c Capture) SearchFields() []string {
	return []string{c.Title, c.Content}
}

// Validate checks the kind and that the payload fields match it: only a
// photo capture holds image bytes and only an audio capture a recording.
func (c Capture) Validate() error {
	if err := c.Kind.Validate(); err != nil {
		return err
	}
	if len(c.ImageData) > 0 && c.Kind != CapturePhoto {
		return fmt.Errorf("%w: %s capture cannot hold a photo", ErrInvalidData, c.Kind)
	}
	if c.AudioPath != "" && c.Kind != CaptureAudio {
		return fmt.Errorf("%w: %s capture cannot hold a recording", ErrInvalidData, c.Kind)
	}
	return nil
}

// CapturePayload is the kind-specific part of a capture.
// Implemented by TextPayload, PhotoPayload and AudioPayload only.
type CapturePayload interface {
	capturePayload()
}

type TextPayload struct {
	Content string
}

type PhotoPayload struct {
	// Image is nil until a photo has been picked.
	Image []byte
}

type AudioPayload struct {
	// Path is empty until a recording has been made.
	Path string
}

func (TextPayload) capturePayload()  {}
func (PhotoPayload) capturePayload() {}
func (AudioPayload) capturePayload() {}

// Payload returns the kind-specific payload. Unknown kinds are reported as text.
func (c Capture) Payload() CapturePayload {
	switch c.Kind {
	case CapturePhoto:
		return PhotoPayload{Image: c.ImageData}
	case CaptureAudio:
		return AudioPayload{Path: c.AudioPath}
	default:
		return TextPayload{Content: c.Content}
	}
}

// WithKind returns a copy switched to kind. Payload fields the new kind
// cannot hold are dropped.
func (c Capture) WithKind(kind CaptureKind) Capture {
	c.Kind = kind
	if kind != CapturePhoto {
		c.ImageData = nil
	}
	if kind != CaptureAudio {
		c.AudioPath = ""
	}
	return c
}

// WithImage returns a copy carrying picked photo bytes.
func (c Capture) WithImage(data []byte) Capture {
	c.ImageData = data
	return c
}

// WithRecording returns a copy referencing a recorded audio file.
func (c Capture) WithRecording(path string) Capture {
	c.AudioPath = path
	return c
}
