package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/projectboard/internal/infrastructure/config"
	"github.com/emiliopalmerini/projectboard/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the project board",
	Long: `Start the project board web server.

Configuration is read from PROJECTBOARD_* environment variables and an
optional .env file in the working directory.

Examples:
  projectboard serve              # Start on PROJECTBOARD_PORT (default 8080)
  projectboard serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Close(closeCtx); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}()

	server := web.NewServer(cfg.Port, app.Store, app.Logger)
	app.RegisterObservers()

	return server.Start(ctx)
}
