// Package workspace owns the five record stores of one user workspace,
// the backend they persist to and the host capabilities the screens use.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"projectx/internal/app/config"
	"projectx/internal/capability"
	"projectx/internal/domain/calendar"
	"projectx/internal/domain/record"
	"projectx/internal/infrastructure/storage"
)

const recordingFile = "recording.m4a"

type Workspace struct {
	Events      *record.Store[record.Event]
	Notes       *record.Store[record.Note]
	Captures    *record.Store[record.Capture]
	Whiteboards *record.Store[record.Whiteboard]
	Todos       *record.Store[record.TodoItem]

	Factory  *record.Factory
	Calendar *calendar.Service
	Recorder capability.AudioRecorder
	Player   capability.AudioPlayer

	backend  storage.Storage
	mediaDir string
	log      *slog.Logger
}

type Options struct {
	CalendarAccess bool
	CalendarName   string
	MediaDir       string
	Location       *time.Location
	Factory        *record.Factory
	Recorder       capability.AudioRecorder
	Player         capability.AudioPlayer
}

// New opens the configured backend and builds a workspace on it. The
// stores are empty until Load is called.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Workspace, error) {
	backend, err := storage.Open(ctx, storage.Options{
		Driver:         cfg.Storage.Driver,
		SQLitePath:     cfg.Storage.SQLitePath,
		DatabaseURI:    cfg.Storage.DatabaseURI,
		MigrationsPath: cfg.Storage.MigrationsPath,
		RedisURL:       cfg.Storage.RedisURL,
		RedisPrefix:    cfg.Storage.RedisPrefix,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	audio := capability.NewCommandAudio(cfg.Capability.AudioCommand, cfg.Capability.AudioPlayCommand)
	return NewWithBackend(backend, Options{
		CalendarAccess: cfg.Capability.CalendarAccess,
		CalendarName:   cfg.Capability.CalendarName,
		MediaDir:       cfg.Capability.MediaDir,
		Recorder:       audio,
		Player:         audio,
	}, log), nil
}

func NewWithBackend(backend storage.Storage, opts Options, log *slog.Logger) *Workspace {
	log = log.With("component", "workspace")

	factory := opts.Factory
	if factory == nil {
		factory = record.NewFactory()
	}
	recorder, player := opts.Recorder, opts.Player
	if recorder == nil || player == nil {
		audio := capability.NewCommandAudio("", "")
		if recorder == nil {
			recorder = audio
		}
		if player == nil {
			player = audio
		}
	}

	ws := &Workspace{
		Events:      record.NewStore[record.Event](backend, record.RecTypeEvent.Key(), log),
		Notes:       record.NewStore[record.Note](backend, record.RecTypeNote.Key(), log),
		Captures:    record.NewStore[record.Capture](backend, record.RecTypeCapture.Key(), log),
		Whiteboards: record.NewStore[record.Whiteboard](backend, record.RecTypeWhiteboard.Key(), log),
		Todos:       record.NewStore[record.TodoItem](backend, record.RecTypeTodo.Key(), log),
		Factory:     factory,
		Recorder:    recorder,
		Player:      player,
		backend:     backend,
		mediaDir:    opts.MediaDir,
		log:         log,
	}
	cal := capability.NewLocalCalendar(ws.Events, opts.CalendarAccess, opts.CalendarName)
	ws.Calendar = calendar.NewService(cal, opts.Location, log)

	return ws
}

// Load reads every store from the backend. Stores that fail to load stay
// usable with an empty collection; the failures are joined.
func (w *Workspace) Load(ctx context.Context) error {
	loaders := []struct {
		typ  record.RecType
		load func(context.Context) (int, error)
	}{
		{record.RecTypeEvent, loadLen(w.Events)},
		{record.RecTypeNote, loadLen(w.Notes)},
		{record.RecTypeCapture, loadLen(w.Captures)},
		{record.RecTypeWhiteboard, loadLen(w.Whiteboards)},
		{record.RecTypeTodo, loadLen(w.Todos)},
	}

	var errs []error
	for _, l := range loaders {
		n, err := l.load(ctx)
		if err != nil {
			w.log.Warn("store loaded empty", "type", l.typ, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", l.typ, err))
			continue
		}
		w.log.Debug("store loaded", "type", l.typ, "count", n)
	}

	return errors.Join(errs...)
}

func loadLen[T record.Entity](s *record.Store[T]) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := s.Load(ctx)
		return len(items), err
	}
}

func (w *Workspace) Close() error {
	if w.backend == nil {
		return nil
	}
	return w.backend.Close()
}

// Counts returns the number of records per screen.
func (w *Workspace) Counts() map[record.RecType]int {
	return map[record.RecType]int{
		record.RecTypeEvent:      w.Events.Len(),
		record.RecTypeNote:       w.Notes.Len(),
		record.RecTypeCapture:    w.Captures.Len(),
		record.RecTypeWhiteboard: w.Whiteboards.Len(),
		record.RecTypeTodo:       w.Todos.Len(),
	}
}

// RecordingPath is where the audio of capture id is written.
func (w *Workspace) RecordingPath(id uuid.UUID) string {
	return filepath.Join(w.mediaDir, id.String(), recordingFile)
}

type ctxKey struct{}

func NewContext(ctx context.Context, ws *Workspace) context.Context {
	return context.WithValue(ctx, ctxKey{}, ws)
}

func FromContext(ctx context.Context) (*Workspace, bool) {
	ws, ok := ctx.Value(ctxKey{}).(*Workspace)
	return ws, ok
}
