package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/financeiro/internal/config"
	"github.com/nfrund/financeiro/internal/logging"
	"github.com/nfrund/financeiro/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.New(cfg.LogFormat, cfg.LogLevel)

		s, err := server.New(cfg)
		if err != nil {
			return err
		}
		s.RegisterRoutes()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return s.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
