package cli

import (
	"bytes"
	"errors"

	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/area"
)

func newExportCmd() *cobra.Command {
	var (
		csvPath  string
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a saved property's room table",
		Long:  "Write the room table of a saved property as CSV, or as an Excel workbook with totals. Use - to write to stdout.",
		Example: `  carpet export "Flat A" --csv area_summary.csv
  carpet export "Flat A" --xlsx flat-a.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" && xlsxPath == "" {
				return errors.New("one of --csv or --xlsx is required")
			}

			props, cleanup, err := openProperties()
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := props.Get(args[0])
			if err != nil {
				return err
			}

			if csvPath != "" {
				var buf bytes.Buffer
				if err := area.WriteCSV(&buf, p.Rooms); err != nil {
					return err
				}
				if err := writeOutput(cmd.OutOrStdout(), csvPath, buf.Bytes()); err != nil {
					return err
				}
			}
			if xlsxPath != "" {
				var buf bytes.Buffer
				if err := area.WriteXLSX(&buf, p.Rooms, p.Totals); err != nil {
					return err
				}
				if err := writeOutput(cmd.OutOrStdout(), xlsxPath, buf.Bytes()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the room table to this CSV file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the room table and totals to this XLSX file")

	return cmd
}
