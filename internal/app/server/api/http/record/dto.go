package record

import (
	"time"

	"projectx/internal/domain/record"
)

// Payload is the request body of one screen. New builds a fresh record
// from it and Apply writes it over an existing one.
type Payload[T record.Entity] interface {
	New(f *record.Factory) T
	Apply(f *record.Factory, existing T) T
}

type listInput struct {
	Query string `query:"q" doc:"Case-insensitive substring filter over the searchable fields"`
}

type idInput struct {
	ID string `path:"id" format:"uuid" doc:"Record ID"`
}

type createInput[P any] struct {
	Body P
}

type updateInput[P any] struct {
	ID   string `path:"id" format:"uuid" doc:"Record ID"`
	Body P
}

type listOutput[T any] struct {
	Body listResponse[T]
}

type listResponse[T any] struct {
	Items []T `json:"items" doc:"Records in insertion order"`
	Total int `json:"total" doc:"Number of records before filtering"`
}

type itemOutput[T any] struct {
	Body T
}

// ==================== Event ====================

type EventRequest struct {
	Title    string    `json:"title" doc:"Event title" minLength:"1"`
	Start    time.Time `json:"start,omitempty" doc:"Start time, defaults to now"`
	End      time.Time `json:"end,omitempty" doc:"End time, defaults to the start"`
	Calendar string    `json:"calendar,omitempty" doc:"Calendar name, defaults to the default calendar"`
}

func (r EventRequest) New(f *record.Factory) record.Event {
	return r.Apply(f, f.Event("", ""))
}

func (r EventRequest) Apply(_ *record.Factory, e record.Event) record.Event {
	e.Title = r.Title
	if !r.Start.IsZero() {
		e.Start = r.Start
		if r.End.IsZero() && e.End.Before(e.Start) {
			e.End = e.Start
		}
	}
	if !r.End.IsZero() {
		e.End = r.End
	}
	if r.Calendar != "" {
		e.Calendar = r.Calendar
	}
	return e
}

// ==================== Note ====================

type NoteRequest struct {
	Title string `json:"title" doc:"Note title"`
	Body  string `json:"body,omitempty" doc:"Free text"`
}

func (r NoteRequest) New(f *record.Factory) record.Note {
	return f.Note(r.Title, r.Body)
}

func (r NoteRequest) Apply(f *record.Factory, n record.Note) record.Note {
	n.Title = r.Title
	n.Body = r.Body
	return n.Touch(f.Now())
}

// ==================== Capture ====================

type CaptureRequest struct {
	Title     string             `json:"title" doc:"Capture title"`
	Kind      record.CaptureKind `json:"type" enum:"text,photo,audio" doc:"Capture kind"`
	Content   string             `json:"content,omitempty" doc:"Text content"`
	ImageData []byte             `json:"image_data,omitempty" doc:"Base64-encoded photo bytes"`
}

func (r CaptureRequest) New(f *record.Factory) record.Capture {
	return r.Apply(f, f.Capture(r.Kind, ""))
}

func (r CaptureRequest) Apply(_ *record.Factory, c record.Capture) record.Capture {
	c = c.WithKind(r.Kind)
	c.Title = r.Title
	c.Content = r.Content
	if r.ImageData != nil {
		c = c.WithImage(r.ImageData)
	}
	return c
}

// ==================== Whiteboard ====================

type WhiteboardRequest struct {
	Title   string `json:"title" doc:"Whiteboard title"`
	Drawing []byte `json:"drawing,omitempty" doc:"Opaque base64-encoded drawing payload"`
}

func (r WhiteboardRequest) New(f *record.Factory) record.Whiteboard {
	return r.Apply(f, f.Whiteboard(""))
}

func (r WhiteboardRequest) Apply(_ *record.Factory, w record.Whiteboard) record.Whiteboard {
	w.Title = r.Title
	if r.Drawing != nil {
		w.Drawing = r.Drawing
	}
	return w
}

// ==================== Todo ====================

type TodoRequest struct {
	Title     string `json:"title" doc:"Task" minLength:"1"`
	Completed bool   `json:"completed,omitempty" doc:"Done flag"`
}

func (r TodoRequest) New(f *record.Factory) record.TodoItem {
	return r.Apply(f, f.Todo(""))
}

func (r TodoRequest) Apply(_ *record.Factory, t record.TodoItem) record.TodoItem {
	t.Title = r.Title
	t.Completed = r.Completed
	return t
}
