package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/property"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [name...]",
		Short: "Compare saved properties",
		Long:  "Compare saved properties side by side. With names, only those properties are compared. The largest carpet area is marked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			props, cleanup, err := openProperties()
			if err != nil {
				return err
			}
			defer cleanup()

			var rows []property.Comparison
			if len(args) == 0 {
				rows, err = props.Compare()
				if err != nil {
					return err
				}
			} else {
				selected := make([]*property.Property, 0, len(args))
				for _, name := range args {
					p, err := props.Get(name)
					if err != nil {
						return err
					}
					selected = append(selected, p)
				}
				rows = property.Compare(selected)
			}

			if isJSON() {
				if rows == nil {
					rows = []property.Comparison{}
				}
				return printJSON(cmd.OutOrStdout(), rows)
			}
			return printComparisonTable(cmd.OutOrStdout(), rows)
		},
	}
}
