package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/calc"
	"github.com/evcraddock/carpet/internal/client"
	"github.com/evcraddock/carpet/internal/layout"
)

func newCalcCmd() *cobra.Command {
	var (
		rooms   roomFlags
		svgPath string
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate room, carpet and claimed areas",
		Long: `Calculate per-room areas, the total carpet area and the claimed area
(carpet area divided by 0.75) in square feet and square yards.

Rooms are given with --room CATEGORY=LENGTHxBREADTH, where lengths are feet
and inches such as 10'6, 10-6, 10ft6in or decimal feet, or with --file.`,
		Example: `  carpet calc -r bedroom=10'6x8 -r toilet=5x5
  carpet calc --file flat.yaml --svg plan.svg --csv area_summary.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := rooms.input()
			if err != nil {
				return err
			}
			return runCalc(cmd.OutOrStdout(), in, svgPath, csvPath)
		},
	}

	rooms.register(cmd)
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the floorplan diagram to this SVG file")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the room table to this CSV file")

	return cmd
}

func runCalc(w io.Writer, in area.Input, svgPath, csvPath string) error {
	res, err := calculate(in)
	if err != nil {
		return err
	}

	if csvPath != "" {
		var buf bytes.Buffer
		if err := area.WriteCSV(&buf, res.Rooms); err != nil {
			return err
		}
		if err := writeOutput(w, csvPath, buf.Bytes()); err != nil {
			return err
		}
	}
	if svgPath != "" {
		if res.Plan == nil {
			return fmt.Errorf("writing %s: %w", svgPath, layout.ErrNothingToRender)
		}
		if err := writeOutput(w, svgPath, []byte(res.Plan.SVG())); err != nil {
			return err
		}
	}

	if isJSON() {
		return printJSON(w, res)
	}

	if err := printRoomTable(w, res.Rooms); err != nil {
		return err
	}
	if res.Totals == nil {
		_, err := fmt.Fprintln(w, "No rooms to display in floorplan.")
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := printTotals(w, *res.Totals); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return printPlan(w, res.Plan)
}

// calculate runs locally, or on the server when one is configured.
func calculate(in area.Input) (*calc.Result, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.ServerURL != "" {
		return client.New(cfg.ServerURL).Calculate(in)
	}
	return calc.Run(in)
}

// writeOutput writes data to path, or to w when path is "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	_, err := fmt.Fprintf(w, "Wrote %s\n", path)
	return err
}
