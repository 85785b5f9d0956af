package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved property",
		Long:  "Show the rooms and totals saved for a property.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, cleanup, err := openProperties()
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := props.Get(args[0])
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), p.WithName())
			}
			return printPropertySummary(cmd.OutOrStdout(), p)
		},
	}
}
