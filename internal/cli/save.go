package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCmd() *cobra.Command {
	var rooms roomFlags

	cmd := &cobra.Command{
		Use:     "save <name>",
		Short:   "Save a property",
		Long:    "Calculate the given rooms and save them with their totals under a property name. An existing property with the same name is replaced.",
		Example: `  carpet save "Flat A" -r bedroom=10'6x8 -r kitchen=9x7`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := rooms.input()
			if err != nil {
				return err
			}

			props, cleanup, err := openProperties()
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := props.Save(args[0], in)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), p.WithName())
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %q: %.2f sq ft carpet, %.2f sq ft claimed (%d rooms)\n",
				p.Name, p.TotalSqft, p.ClaimedSqft, len(p.Rooms))
			return err
		},
	}

	rooms.register(cmd)

	return cmd
}
