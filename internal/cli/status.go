package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/client"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where properties are stored",
		Long:  "Shows the configured store and, when a server is configured, whether it can be reached.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.OutOrStdout())
		},
	}
}

func runStatus(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.ServerURL != "" {
		if _, err := fmt.Fprintf(w, "Server:  %s\n", cfg.ServerURL); err != nil {
			return err
		}
		if err := client.New(cfg.ServerURL).Health(); err != nil {
			_, err = fmt.Fprintf(w, "Status:  ✗ cannot reach server (%v)\n", err)
			return err
		}
		_, err = fmt.Fprintln(w, "Status:  ✓ connected")
		return err
	}

	store, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := fmt.Fprintf(w, "Store:   %s (%s)\n", cfg.StorePath, cfg.Store); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Saved:   %d properties\n", store.Len())
	return err
}
