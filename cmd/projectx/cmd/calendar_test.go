package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"projectx/internal/app/workspace"
	"projectx/internal/domain/record"
	"projectx/internal/infrastructure/storage/memory"
)

func calendarWorkspace(t *testing.T, access bool) *workspace.Workspace {
	t.Helper()
	ws := workspace.NewWithBackend(memory.New(), workspace.Options{
		CalendarAccess: access,
		CalendarName:   "Personal",
		MediaDir:       t.TempDir(),
		Location:       time.Local,
	}, slog.Default())
	require.NoError(t, ws.Load(context.Background()))
	return ws
}

// runCalendar executes one calendar command line and returns stdout and stderr.
func runCalendar(t *testing.T, ws *workspace.Workspace, args ...string) (string, string, error) {
	t.Helper()
	root := &cobra.Command{Use: "projectx", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().Bool("json", false, "")
	root.AddCommand(newCalendarCmd())

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(workspace.NewContext(context.Background(), ws))
	return out.String(), errOut.String(), err
}

func TestCalendarDay(t *testing.T) {
	ctx := context.Background()
	ws := calendarWorkspace(t, true)

	start := time.Date(2025, 4, 24, 12, 0, 0, 0, time.Local)
	standup := record.Event{ID: uuid.New(), Title: "Standup", Start: start, End: start.Add(90 * time.Minute), Calendar: "Work"}
	other := record.Event{ID: uuid.New(), Title: "Dentist", Start: start.AddDate(0, 0, 1), End: start.AddDate(0, 0, 1)}
	require.NoError(t, ws.Events.Insert(ctx, standup))
	require.NoError(t, ws.Events.Insert(ctx, other))

	out, _, err := runCalendar(t, ws, "calendar", "day", "--date", "2025-04-24")
	require.NoError(t, err)
	assert.Contains(t, out, "Thursday, 24 April 2025")
	assert.Contains(t, out, "12:00")
	assert.Contains(t, out, "1h30m")
	assert.Contains(t, out, "Standup")
	assert.NotContains(t, out, "Dentist")

	out, _, err = runCalendar(t, ws, "calendar", "day", "--date", "2025-04-24", "--json")
	require.NoError(t, err)
	var events []record.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	assert.Equal(t, standup.ID, events[0].ID)

	out, _, err = runCalendar(t, ws, "calendar", "day", "--date", "2025-04-23")
	require.NoError(t, err)
	assert.Contains(t, out, "No events")

	_, _, err = runCalendar(t, ws, "calendar", "day", "--date", "24.04.2025")
	assert.Error(t, err)
}

func TestCalendarDay_Denied(t *testing.T) {
	ws := calendarWorkspace(t, false)

	out, errOut, err := runCalendar(t, ws, "calendar", "day")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Calendar access denied")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Minute, "45m"},
		{90 * time.Minute, "1h30m"},
		{2 * time.Hour, "2h0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in))
	}
}

func TestSetupApp_RejectsUnknownEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APP_ENV", "local")
	t.Setenv("STORAGE_DRIVER", "memory")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	envFlag = "foo"
	t.Cleanup(func() { envFlag = "" })

	err = setupApp(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--env")
}
