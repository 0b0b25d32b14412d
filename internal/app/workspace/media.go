package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"projectx/internal/capability"
	"projectx/internal/domain/record"
)

// AttachPhoto asks picker for an image and stores it on capture id.
// capability.ErrNoSelection is returned unchanged when the user picks nothing.
func (w *Workspace) AttachPhoto(ctx context.Context, id uuid.UUID, picker capability.PhotoPicker) error {
	if err := w.expectCapture(id, record.CapturePhoto); err != nil {
		return err
	}
	data, err := picker.PickPhoto(ctx)
	if err != nil {
		return err
	}
	return w.updateCapture(ctx, id, record.CapturePhoto, func(c record.Capture) record.Capture {
		return c.WithImage(data)
	})
}

// StartRecording begins recording audio for capture id and returns the
// target path.
func (w *Workspace) StartRecording(ctx context.Context, id uuid.UUID) (string, error) {
	if err := w.expectCapture(id, record.CaptureAudio); err != nil {
		return "", err
	}
	path := w.RecordingPath(id)
	if err := w.Recorder.Start(ctx, path); err != nil {
		return "", fmt.Errorf("start recording: %w", err)
	}
	w.log.Debug("recording started", "capture_id", id, "path", path)
	return path, nil
}

// StopRecording stops the recorder and points capture id at the file.
func (w *Workspace) StopRecording(ctx context.Context, id uuid.UUID) error {
	if err := w.expectCapture(id, record.CaptureAudio); err != nil {
		return err
	}
	if err := w.Recorder.Stop(); err != nil {
		return fmt.Errorf("stop recording: %w", err)
	}
	path := w.RecordingPath(id)
	return w.updateCapture(ctx, id, record.CaptureAudio, func(c record.Capture) record.Capture {
		return c.WithRecording(path)
	})
}

func (w *Workspace) PlayRecording(ctx context.Context, id uuid.UUID) error {
	c, ok := w.Captures.Get(id)
	if !ok {
		return record.ErrNotFound
	}
	audio, ok := c.Payload().(record.AudioPayload)
	if !ok || audio.Path == "" {
		return fmt.Errorf("capture %s has no recording: %w", id, record.ErrInvalidData)
	}
	return w.Player.Play(ctx, audio.Path)
}

// ImportDrawing replaces the drawing of whiteboard id with the payload
// exported by surface.
func (w *Workspace) ImportDrawing(ctx context.Context, id uuid.UUID, surface capability.DrawingSurface) error {
	payload, err := surface.Export(ctx)
	if err != nil {
		return err
	}
	found, err := w.Whiteboards.Update(ctx, id, func(wb record.Whiteboard) record.Whiteboard {
		wb.Drawing = payload
		return wb
	})
	if err != nil {
		return err
	}
	if !found {
		return record.ErrNotFound
	}
	w.log.Debug("drawing imported", "whiteboard_id", id, "fingerprint", record.Fingerprint(payload))
	return nil
}

// ExportDrawing hands the stored drawing of whiteboard id to surface unmodified.
func (w *Workspace) ExportDrawing(ctx context.Context, id uuid.UUID, surface capability.DrawingSurface) error {
	wb, ok := w.Whiteboards.Get(id)
	if !ok {
		return record.ErrNotFound
	}
	if len(wb.Drawing) == 0 {
		return errors.New("whiteboard has no drawing")
	}
	return surface.Import(ctx, wb.Drawing)
}

// expectCapture checks that capture id exists and is of the given kind.
func (w *Workspace) expectCapture(id uuid.UUID, kind record.CaptureKind) error {
	c, ok := w.Captures.Get(id)
	if !ok {
		return record.ErrNotFound
	}
	return checkKind(c, kind)
}

func checkKind(c record.Capture, kind record.CaptureKind) error {
	if c.Kind != kind {
		return fmt.Errorf("%w: capture %s is %s, not %s", record.ErrInvalidData, c.ID, c.Kind, kind)
	}
	return nil
}

// updateCapture applies mutate to capture id, re-checking its kind under
// the store lock.
func (w *Workspace) updateCapture(ctx context.Context, id uuid.UUID, kind record.CaptureKind, mutate func(record.Capture) record.Capture) error {
	found, err := w.Captures.Modify(ctx, id, func(c record.Capture) (record.Capture, error) {
		if err := checkKind(c, kind); err != nil {
			return c, err
		}
		return mutate(c), nil
	})
	if err != nil {
		return err
	}
	if !found {
		return record.ErrNotFound
	}
	return nil
}
