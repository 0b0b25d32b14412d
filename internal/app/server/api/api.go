// Package api exposes the workspace screens over HTTP.
//
//	GET    /api/v1/health
//	GET    /api/v1/screens
//	GET    /api/v1/calendar/day?date=YYYY-MM-DD
//	GET    /api/v1/{events|notes|captures|whiteboards|todos}?q=
//	POST   /api/v1/{events|notes|captures|whiteboards|todos}
//	GET    /api/v1/{...}/{id}
//	PUT    /api/v1/{...}/{id}
//	DELETE /api/v1/{...}/{id}
//	POST   /api/v1/todos/{id}/toggle
package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	calendarAPI "projectx/internal/app/server/api/http/calendar"
	healthAPI "projectx/internal/app/server/api/http/health"
	"projectx/internal/app/server/api/http/middleware"
	"projectx/internal/app/server/api/http/middleware/auth"
	"projectx/internal/app/server/api/http/middleware/logger"
	recordAPI "projectx/internal/app/server/api/http/record"
	screenAPI "projectx/internal/app/server/api/http/screen"
	"projectx/internal/app/workspace"
	"projectx/internal/domain/record"
)

const prefix = "/api/v1"

type routes interface {
	SetupRoutes(api huma.API)
}

// New creates a *chi.Mux with every operation registered through huma.
// A non-empty apiToken protects everything except the health check.
func New(ws *workspace.Workspace, apiToken string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("ProjectX API", "1.0.0")
	if apiToken != "" {
		config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			"bearer": {Type: "http", Scheme: "bearer"},
		}
	}
	API := humachi.New(mux, config)

	for _, h := range handlers(ws, apiToken, log) {
		h.SetupRoutes(API)
	}

	return mux
}

func handlers(ws *workspace.Workspace, apiToken string, log *slog.Logger) []routes {
	loggerMW := logger.New(log)
	authMW := auth.New(apiToken, log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	health := healthAPI.NewHandler(ws, log, middlewares.GetAllAndClear())

	next := func() huma.Middlewares {
		middlewares.Add(loggerMW.Middleware())
		if apiToken != "" {
			middlewares.Add(authMW.Middleware())
		}
		return middlewares.GetAllAndClear()
	}

	events := recordAPI.NewHandler[record.Event, recordAPI.EventRequest](
		record.RecTypeEvent, prefix+"/events", ws.Events, ws.Factory, log, next(),
	).WithInsert(ws.Calendar.Add)

	return []routes{
		health,
		screenAPI.NewHandler(ws, log, next()),
		calendarAPI.NewHandler(ws.Calendar, time.Local, log, next()),
		events,
		recordAPI.NewHandler[record.Note, recordAPI.NoteRequest](
			record.RecTypeNote, prefix+"/notes", ws.Notes, ws.Factory, log, next(),
		),
		recordAPI.NewHandler[record.Capture, recordAPI.CaptureRequest](
			record.RecTypeCapture, prefix+"/captures", ws.Captures, ws.Factory, log, next(),
		),
		recordAPI.NewHandler[record.Whiteboard, recordAPI.WhiteboardRequest](
			record.RecTypeWhiteboard, prefix+"/whiteboards", ws.Whiteboards, ws.Factory, log, next(),
		),
		recordAPI.NewHandler[record.TodoItem, recordAPI.TodoRequest](
			record.RecTypeTodo, prefix+"/todos", ws.Todos, ws.Factory, log, next(),
		),
		recordAPI.NewToggleHandler(ws.Todos, log, next()),
	}
}
