package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/logging"
	"github.com/evcraddock/carpet/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long:  "Start an HTTP server for the calculator form, the comparison page and the JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: 8080)")

	return cmd
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Port = port
	}

	logging.Setup(cfg.DevMode)

	store, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := web.NewServer(store, web.Config{AllowedOrigins: cfg.AllowedOrigins})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(cfg.Port)
}
