package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"projectx/internal/app/workspace"
	"projectx/internal/capability"
)

func newCalendarCmd() *cobra.Command {
	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Calendar day view",
	}
	dayCmd := newDayCmd()
	dayCmd.Flags().String("date", "", "day to show as YYYY-MM-DD (default today)")
	calendarCmd.AddCommand(dayCmd)
	return calendarCmd
}

func newDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day",
		Short: "List the events of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, ok := workspace.FromContext(cmd.Context())
			if !ok {
				return errors.New("workspace is not initialized")
			}

			day := time.Now()
			if raw, _ := cmd.Flags().GetString("date"); raw != "" {
				parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", raw)
				}
				day = parsed
			}

			events, err := ws.Calendar.Day(cmd.Context(), day)
			if errors.Is(err, capability.ErrAccessDenied) {
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("Calendar access denied, nothing to show."))
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(events)
			}

			fmt.Fprintln(out, day.Format("Monday, 2 January 2006"))
			if len(events) == 0 {
				fmt.Fprintln(out, "No events")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, e := range events {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Start.In(time.Local).Format("15:04"),
					e.End.In(time.Local).Format("15:04"),
					formatDuration(e.Duration()),
					e.Title,
					e.Calendar,
				)
			}
			return w.Flush()
		},
	}
}

// formatDuration renders d in hours and minutes, e.g. 1h30m or 45m.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	if d < time.Minute {
		return "0m"
	}
	return strings.TrimSuffix(d.String(), "0s")
}
