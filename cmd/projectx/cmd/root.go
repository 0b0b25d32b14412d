package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"projectx/cmd/projectx/cmd/record"
	"projectx/internal/app/config"
	"projectx/internal/app/workspace"
	"projectx/internal/utils/logger"
)

var (
	cfgFile string
	envFlag string

	cfg *config.Config
	log *slog.Logger
	ws  *workspace.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "projectx",
	Short: "ProjectX - calendar, notes, captures, whiteboards and todos",
	Long: `ProjectX keeps a personal workspace of five screens: calendar events,
notes, quick captures (text, photo, audio), whiteboards and todos.

Records are stored in the configured backend (SQLite by default) and are
addressed by their position in the last listing or by their ID.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if envFlag != "" {
		if err := cfg.SetEnv(envFlag); err != nil {
			return fmt.Errorf("--env: %w", err)
		}
	}

	log = logger.NewLevel(cfg.Env, cfg.LogLevel)

	ws, err = workspace.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("init workspace: %w", err)
	}
	if err := ws.Load(cmd.Context()); err != nil {
		// stores that failed to load start empty
		log.Warn("workspace loaded with errors", "error", err)
	}

	cmd.SetContext(workspace.NewContext(cmd.Context(), ws))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if ws == nil {
		return nil
	}
	return ws.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.projectx/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "override APP_ENV: local, dev or prod")
	rootCmd.PersistentFlags().Bool("json", false, "print JSON instead of tables")

	rootCmd.AddCommand(record.Commands()...)
	rootCmd.AddCommand(newCalendarCmd())
	rootCmd.AddCommand(serveCmd)
}
