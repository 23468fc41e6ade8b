package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/internal/history"
	"github.com/msto63/rubic/internal/playground"
	"github.com/msto63/rubic/pkg/core/logging"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and WebSocket playground",
	Long: `Serves the lexer and parser over HTTP:

  GET  /healthz
  GET  /api/v1/version
  POST /api/v1/lex
  POST /api/v1/parse
  GET  /api/v1/repl/ws

Examples:
  rubic serve
  rubic serve --host 0.0.0.0 --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides server.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides server.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := playground.ConfigFrom(appConfig)
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	store, err := history.Open(appConfig.REPL.HistoryPath)
	if err != nil {
		appLogger.Warn("History health check disabled", mdwlog.Fields{"error": err.Error()})
	} else {
		defer store.Close()
	}

	srv := playground.New(cfg, playground.Options{
		Engine: engine,
		Logger: logging.Wrap(appLogger, "playground"),
		Store:  store,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Playground listening", mdwlog.Fields{"address": srv.Address()})
	return srv.Start(ctx)
}
