package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/layout"
)

func newLayoutCmd() *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "layout <name>",
		Short: "Show the floorplan of a saved property",
		Long:  "Print the diagrammatic floorplan of a saved property, or write it as SVG with --svg. Rooms are stacked top to bottom; the diagram does not show real adjacency.",
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

			plan, err := layout.Generate(p.Rooms)
			if err != nil {
				return err
			}

			if svgPath != "" {
				return writeOutput(cmd.OutOrStdout(), svgPath, []byte(plan.SVG()))
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), plan)
			}
			return printPlan(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "write the diagram to this SVG file")

	return cmd
}
