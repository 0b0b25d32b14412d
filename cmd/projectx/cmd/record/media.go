package record

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"projectx/internal/capability"
	"projectx/internal/domain/record"
)

func captureCommands(s Screen[record.Capture]) []*cobra.Command {
	var photoPath string
	photoCmd := &cobra.Command{
		Use:   "photo <position|id>",
		Short: "Attach an image file to a capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			c, err := resolve(ws.Captures.Search(""), ws.Captures, args[0])
			if err != nil {
				return err
			}
			if err := ws.AttachPhoto(cmd.Context(), c.ID, capability.FilePicker{Path: photoPath}); err != nil {
				return err
			}
			c, _ = ws.Captures.Get(c.ID)
			return s.printOne(cmd, c)
		},
	}
	photoCmd.Flags().StringVar(&photoPath, "file", "", "image file")

	var duration time.Duration
	recordCmd := &cobra.Command{
		Use:   "record <position|id>",
		Short: "Record audio for a capture",
		Long: `Runs AUDIO_COMMAND until Enter is pressed, --duration elapses or the
command is interrupted, then stores the recording path on the capture.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			c, err := resolve(ws.Captures.Search(""), ws.Captures, args[0])
			if err != nil {
				return err
			}

			path, err := ws.StartRecording(cmd.Context(), c.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Recording to %s\n", path)

			stop := make(chan struct{})
			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Press Enter to stop.")
				go func() {
					_, _ = bufio.NewReader(f).ReadString('\n')
					close(stop)
				}()
			}
			var timeout <-chan time.Time
			if duration > 0 {
				timeout = time.After(duration)
			}

			select {
			case <-stop:
			case <-timeout:
			case <-cmd.Context().Done():
			}

			// the command context may already be canceled by the interrupt
			if err := ws.StopRecording(context.WithoutCancel(cmd.Context()), c.ID); err != nil {
				return err
			}
			c, _ = ws.Captures.Get(c.ID)
			return s.printOne(cmd, c)
		},
	}
	recordCmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long")

	playCmd := &cobra.Command{
		Use:   "play <position|id>",
		Short: "Play the recording of an audio capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			c, err := resolve(ws.Captures.Search(""), ws.Captures, args[0])
			if err != nil {
				return err
			}
			return ws.PlayRecording(cmd.Context(), c.ID)
		},
	}

	return []*cobra.Command{photoCmd, recordCmd, playCmd}
}

func whiteboardCommands(s Screen[record.Whiteboard]) []*cobra.Command {
	var importPath, exportPath string

	importCmd := &cobra.Command{
		Use:   "import <position|id>",
		Short: "Replace the drawing with the contents of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			w, err := resolve(ws.Whiteboards.Search(""), ws.Whiteboards, args[0])
			if err != nil {
				return err
			}
			if err := ws.ImportDrawing(cmd.Context(), w.ID, capability.FileSurface{Path: importPath}); err != nil {
				return err
			}
			w, _ = ws.Whiteboards.Get(w.ID)
			return s.printOne(cmd, w)
		},
	}
	importCmd.Flags().StringVar(&importPath, "file", "", "drawing file")

	exportCmd := &cobra.Command{
		Use:   "export <position|id>",
		Short: "Write the stored drawing to a file unmodified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			w, err := resolve(ws.Whiteboards.Search(""), ws.Whiteboards, args[0])
			if err != nil {
				return err
			}
			if err := ws.ExportDrawing(cmd.Context(), w.ID, capability.FileSurface{Path: exportPath}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(w.Drawing), exportPath)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&exportPath, "file", "", "destination file")

	return []*cobra.Command{importCmd, exportCmd}
}

func todoCommands(s Screen[record.TodoItem]) []*cobra.Command {
	var query string
	toggleCmd := &cobra.Command{
		Use:   "toggle <position|id>",
		Short: "Flip the done flag of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			t, err := resolve(ws.Todos.Search(query), ws.Todos, args[0])
			if err != nil {
				return err
			}
			found, err := ws.Todos.Update(cmd.Context(), t.ID, record.TodoItem.Toggle)
			if err != nil {
				return err
			}
			if !found {
				return record.ErrNotFound
			}
			t, _ = ws.Todos.Get(t.ID)
			return s.printOne(cmd, t)
		},
	}
	toggleCmd.Flags().StringVarP(&query, "search", "s", "", "positions refer to the listing filtered by this query")

	return []*cobra.Command{toggleCmd}
}
