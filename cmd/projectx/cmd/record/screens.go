package record

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"projectx/internal/app/workspace"
	"projectx/internal/capability"
	"projectx/internal/domain/calendar"
	"projectx/internal/domain/form"
	"projectx/internal/domain/record"
)

var timeInputs = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeInputs {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want YYYY-MM-DD HH:MM or RFC 3339", s)
}

func flagString(cmd *cobra.Command, name string) (string, bool) {
	v, err := cmd.Flags().GetString(name)
	return v, err == nil && cmd.Flags().Changed(name)
}

func flagBool(cmd *cobra.Command, name string) (bool, bool) {
	v, err := cmd.Flags().GetBool(name)
	return v, err == nil && cmd.Flags().Changed(name)
}

// ==================== Event ====================

// eventSaver creates events through the calendar so access is requested
// and the default calendar is filled in.
type eventSaver struct {
	*record.Store[record.Event]
	cal *calendar.Service
}

func (s eventSaver) Insert(ctx context.Context, e record.Event) error {
	return s.cal.Add(ctx, e)
}

func eventScreen() Screen[record.Event] {
	return Screen[record.Event]{
		Type:   record.RecTypeEvent,
		Store:  func(ws *workspace.Workspace) *record.Store[record.Event] { return ws.Events },
		Header: []string{"TITLE", "START", "END", "CALENDAR"},
		Row: func(e record.Event) []string {
			return []string{
				truncate(e.Title, 40),
				e.Start.In(time.Local).Format(timeLayout),
				e.End.In(time.Local).Format(timeLayout),
				e.Calendar,
			}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("title", "", "event title")
			cmd.Flags().String("start", "", "start time (default now)")
			cmd.Flags().String("end", "", "end time (default the start)")
			cmd.Flags().String("calendar", "", "calendar name (default the default calendar)")
		},
		Build: func(_ context.Context, ws *workspace.Workspace, cmd *cobra.Command) (record.Event, error) {
			title, _ := flagString(cmd, "title")
			cal, _ := flagString(cmd, "calendar")
			return applyEvent(cmd, ws.Factory.Event(title, cal))
		},
		Apply: func(_ *workspace.Workspace, cmd *cobra.Command, e record.Event) (record.Event, error) {
			return applyEvent(cmd, e)
		},
		Saver: func(ws *workspace.Workspace) form.Saver[record.Event] {
			return eventSaver{Store: ws.Events, cal: ws.Calendar}
		},
	}
}

func applyEvent(cmd *cobra.Command, e record.Event) (record.Event, error) {
	if title, ok := flagString(cmd, "title"); ok {
		e.Title = title
	}
	if cal, ok := flagString(cmd, "calendar"); ok {
		e.Calendar = cal
	}
	if raw, ok := flagString(cmd, "start"); ok {
		start, err := parseTime(raw)
		if err != nil {
			return e, err
		}
		e.Start = start
		if e.End.Before(start) {
			e.End = start
		}
	}
	if raw, ok := flagString(cmd, "end"); ok {
		end, err := parseTime(raw)
		if err != nil {
			return e, err
		}
		e.End = end
	}
	return e, nil
}

// ==================== Note ====================

func noteScreen() Screen[record.Note] {
	return Screen[record.Note]{
		Type:   record.RecTypeNote,
		Store:  func(ws *workspace.Workspace) *record.Store[record.Note] { return ws.Notes },
		Header: []string{"TITLE", "MODIFIED", "BODY"},
		Row: func(n record.Note) []string {
			return []string{
				truncate(n.Title, 30),
				n.Modified.In(time.Local).Format(timeLayout),
				truncate(n.Body, 50),
			}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("title", "", "note title")
			cmd.Flags().String("body", "", "note text; read from stdin when piped")
		},
		Build: func(_ context.Context, ws *workspace.Workspace, cmd *cobra.Command) (record.Note, error) {
			title, _ := flagString(cmd, "title")
			body, ok := flagString(cmd, "body")
			if !ok {
				piped, err := readPiped(cmd)
				if err != nil {
					return record.Note{}, err
				}
				body = piped
			}
			return ws.Factory.Note(title, body), nil
		},
		Apply: func(ws *workspace.Workspace, cmd *cobra.Command, n record.Note) (record.Note, error) {
			if title, ok := flagString(cmd, "title"); ok {
				n.Title = title
			}
			if body, ok := flagString(cmd, "body"); ok {
				n.Body = body
			}
			return n.Touch(ws.Factory.Now()), nil
		},
	}
}

// readPiped returns stdin when it is not a terminal.
func readPiped(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ==================== Capture ====================

func captureScreen() Screen[record.Capture] {
	return Screen[record.Capture]{
		Type:   record.RecTypeCapture,
		Store:  func(ws *workspace.Workspace) *record.Store[record.Capture] { return ws.Captures },
		Header: []string{"KIND", "TITLE", "CONTENT", "CREATED"},
		Row: func(c record.Capture) []string {
			return []string{
				string(c.Kind),
				truncate(c.Title, 30),
				captureSummary(c),
				c.Created.In(time.Local).Format(timeLayout),
			}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("title", "", "capture title")
			cmd.Flags().String("type", string(record.CaptureText), "capture kind: "+kindUsage())
			cmd.Flags().String("content", "", "text content")
			cmd.Flags().String("photo", "", "image file to attach")
		},
		Build: func(ctx context.Context, ws *workspace.Workspace, cmd *cobra.Command) (record.Capture, error) {
			kind, _ := cmd.Flags().GetString("type")
			c := ws.Factory.Capture(record.CaptureKind(kind), "")
			return applyCapture(ctx, cmd, c)
		},
		Apply: func(_ *workspace.Workspace, cmd *cobra.Command, c record.Capture) (record.Capture, error) {
			return applyCapture(cmd.Context(), cmd, c)
		},
		Extra: captureCommands,
	}
}

func applyCapture(ctx context.Context, cmd *cobra.Command, c record.Capture) (record.Capture, error) {
	if kind, ok := flagString(cmd, "type"); ok {
		c = c.WithKind(record.CaptureKind(kind))
	}
	if title, ok := flagString(cmd, "title"); ok {
		c.Title = title
	}
	if content, ok := flagString(cmd, "content"); ok {
		c.Content = content
	}
	if path, ok := flagString(cmd, "photo"); ok {
		data, err := capability.FilePicker{Path: path}.PickPhoto(ctx)
		if err != nil {
			return c, err
		}
		c = c.WithImage(data)
	}
	return c, c.Validate()
}

// kindUsage lists the capture kinds with their menu labels.
func kindUsage() string {
	kinds := []record.CaptureKind{record.CaptureText, record.CapturePhoto, record.CaptureAudio}
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s (%s)", k, k.Label()))
	}
	return strings.Join(parts, ", ")
}

func captureSummary(c record.Capture) string {
	switch p := c.Payload().(type) {
	case record.PhotoPayload:
		if len(p.Image) == 0 {
			return "no photo"
		}
		return fmt.Sprintf("%d bytes", len(p.Image))
	case record.AudioPayload:
		if p.Path == "" {
			return "not recorded"
		}
		return p.Path
	case record.TextPayload:
		return truncate(p.Content, 50)
	default:
		return ""
	}
}

// ==================== Whiteboard ====================

func whiteboardScreen() Screen[record.Whiteboard] {
	return Screen[record.Whiteboard]{
		Type:   record.RecTypeWhiteboard,
		Store:  func(ws *workspace.Workspace) *record.Store[record.Whiteboard] { return ws.Whiteboards },
		Header: []string{"TITLE", "DRAWING", "CREATED"},
		Row: func(w record.Whiteboard) []string {
			drawing := "empty"
			if len(w.Drawing) > 0 {
				drawing = fmt.Sprintf("%d bytes (%s)", len(w.Drawing), record.Fingerprint(w.Drawing))
			}
			return []string{
				truncate(w.Title, 40),
				drawing,
				w.Created.In(time.Local).Format(timeLayout),
			}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("title", "", "whiteboard title")
		},
		Build: func(_ context.Context, ws *workspace.Workspace, cmd *cobra.Command) (record.Whiteboard, error) {
			title, _ := flagString(cmd, "title")
			return ws.Factory.Whiteboard(title), nil
		},
		Apply: func(_ *workspace.Workspace, cmd *cobra.Command, w record.Whiteboard) (record.Whiteboard, error) {
			if title, ok := flagString(cmd, "title"); ok {
				w.Title = title
			}
			return w, nil
		},
		Extra: whiteboardCommands,
	}
}

// ==================== Todo ====================

func todoScreen() Screen[record.TodoItem] {
	return Screen[record.TodoItem]{
		Type:   record.RecTypeTodo,
		Store:  func(ws *workspace.Workspace) *record.Store[record.TodoItem] { return ws.Todos },
		Header: []string{"DONE", "TITLE", "CREATED"},
		Row: func(t record.TodoItem) []string {
			done := "[ ]"
			if t.Completed {
				done = "[x]"
			}
			return []string{
				done,
				truncate(t.Title, 50),
				t.Created.In(time.Local).Format(timeLayout),
			}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("title", "", "task")
			cmd.Flags().Bool("done", false, "mark as completed")
		},
		Build: func(_ context.Context, ws *workspace.Workspace, cmd *cobra.Command) (record.TodoItem, error) {
			title, _ := flagString(cmd, "title")
			t := ws.Factory.Todo(title)
			t.Completed, _ = flagBool(cmd, "done")
			return t, nil
		},
		Apply: func(_ *workspace.Workspace, cmd *cobra.Command, t record.TodoItem) (record.TodoItem, error) {
			if title, ok := flagString(cmd, "title"); ok {
				t.Title = title
			}
			if done, ok := flagBool(cmd, "done"); ok {
				t.Completed = done
			}
			return t, nil
		},
		Extra: todoCommands,
	}
}
