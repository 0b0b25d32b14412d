// Package record builds the list/add/edit/rm commands of every screen.
package record

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"projectx/internal/app/workspace"
	"projectx/internal/domain/form"
	"projectx/internal/domain/record"
)

// Screen describes how one record type is shown and edited on the
// command line.
type Screen[T record.Entity] struct {
	Type   record.RecType
	Store  func(*workspace.Workspace) *record.Store[T]
	Header []string
	Row    func(T) []string

	// Flags registers the add/edit flags.
	Flags func(cmd *cobra.Command)
	// Build creates a record from the add flags.
	Build func(ctx context.Context, ws *workspace.Workspace, cmd *cobra.Command) (T, error)
	// Apply writes the edit flags that were set onto item.
	Apply func(ws *workspace.Workspace, cmd *cobra.Command, item T) (T, error)
	// Saver overrides where drafts are saved; the store by default.
	Saver func(ws *workspace.Workspace) form.Saver[T]
	// Extra returns screen specific subcommands.
	Extra func(s Screen[T]) []*cobra.Command
}

// Commands returns the command of every screen.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		NewCommand(eventScreen()),
		NewCommand(noteScreen()),
		NewCommand(captureScreen()),
		NewCommand(whiteboardScreen()),
		NewCommand(todoScreen()),
	}
}

func NewCommand[T record.Entity](s Screen[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(s.Type),
		Short: "Manage the " + s.Type.DisplayName() + " screen",
	}
	cmd.AddCommand(s.listCmd(), s.addCmd(), s.editCmd(), s.rmCmd())
	if s.Extra != nil {
		cmd.AddCommand(s.Extra(s)...)
	}
	return cmd
}

func fromCmd(cmd *cobra.Command) (*workspace.Workspace, error) {
	ws, ok := workspace.FromContext(cmd.Context())
	if !ok {
		return nil, errors.New("workspace is not initialized")
	}
	return ws, nil
}

func (s Screen[T]) saver(ws *workspace.Workspace) form.Saver[T] {
	if s.Saver != nil {
		return s.Saver(ws)
	}
	return s.Store(ws)
}

func (s Screen[T]) listCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			return s.print(cmd, s.Store(ws).Search(query))
		},
	}
	cmd.Flags().StringVarP(&query, "search", "s", "", "case-insensitive substring filter")
	return cmd
}

func (s Screen[T]) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			item, err := s.Build(cmd.Context(), ws, cmd)
			if err != nil {
				return err
			}

			draft := form.New[T](s.saver(ws), item)
			if err := draft.Save(cmd.Context()); err != nil {
				return err
			}

			if stored, ok := s.Store(ws).Get(item.RecordID()); ok {
				item = stored
			}
			return s.printOne(cmd, item)
		},
	}
	s.Flags(cmd)
	return cmd
}

func (s Screen[T]) editCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "edit <position|id>",
		Short: "Change a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			item, err := resolve(s.Store(ws).Search(query), s.Store(ws), args[0])
			if err != nil {
				return err
			}

			draft := form.Edit[T](s.saver(ws), item)
			var applyErr error
			if err := draft.Set(func(v T) T {
				out, err := s.Apply(ws, cmd, v)
				if err != nil {
					applyErr = err
					return v
				}
				return out
			}); err != nil {
				return err
			}
			if applyErr != nil {
				draft.Cancel()
				return applyErr
			}
			if err := draft.Save(cmd.Context()); err != nil {
				return err
			}

			return s.printOne(cmd, draft.Value())
		},
	}
	cmd.Flags().StringVarP(&query, "search", "s", "", "positions refer to the listing filtered by this query")
	s.Flags(cmd)
	return cmd
}

func (s Screen[T]) rmCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "rm <position|id>...",
		Short: "Delete records",
		Long: `Deletes records by their position in the listing (as printed by list,
with the same --search) or by ID.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := fromCmd(cmd)
			if err != nil {
				return err
			}
			store := s.Store(ws)

			var (
				positions []int
				ids       []uuid.UUID
			)
			for _, arg := range args {
				if id, err := uuid.Parse(arg); err == nil {
					ids = append(ids, id)
					continue
				}
				pos, err := strconv.Atoi(arg)
				if err != nil || pos < 1 {
					return fmt.Errorf("invalid position %q", arg)
				}
				positions = append(positions, pos-1)
			}

			// positions refer to the listing as it was before this command
			n, err := store.DeleteAt(cmd.Context(), store.Search(query), positions...)
			if err != nil {
				return err
			}
			if len(ids) > 0 {
				removed, err := store.Delete(cmd.Context(), ids...)
				if err != nil {
					return err
				}
				n += removed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record(s)\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "search", "s", "", "positions refer to the listing filtered by this query")
	return cmd
}

// resolve finds the record named by arg: a 1-based position in view or an ID.
func resolve[T record.Entity](view record.View[T], store *record.Store[T], arg string) (T, error) {
	var zero T
	if id, err := uuid.Parse(arg); err == nil {
		item, ok := store.Get(id)
		if !ok {
			return zero, fmt.Errorf("%w: %s", record.ErrNotFound, id)
		}
		return item, nil
	}

	pos, err := strconv.Atoi(arg)
	if err != nil {
		return zero, fmt.Errorf("invalid position %q", arg)
	}
	item, ok := view.At(pos - 1)
	if !ok {
		return zero, fmt.Errorf("%w: no record at position %d", record.ErrNotFound, pos)
	}
	return item, nil
}
