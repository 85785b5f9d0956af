package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/property"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved properties",
		Long:  "List all saved properties with their carpet and claimed areas.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, cleanup, err := openProperties()
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := props.List()
			if err != nil {
				return err
			}

			if isJSON() {
				out := make([]property.Named, 0, len(list))
				for _, p := range list {
					out = append(out, p.WithName())
				}
				return printJSON(cmd.OutOrStdout(), out)
			}

			return printComparisonTable(cmd.OutOrStdout(), property.Compare(list))
		},
	}
}
