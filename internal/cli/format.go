package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/evcraddock/carpet/internal/area"
	"github.com/evcraddock/carpet/internal/layout"
	"github.com/evcraddock/carpet/internal/property"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRoomTable prints rooms as a formatted table.
func printRoomTable(out io.Writer, rooms []area.Room) error {
	if len(rooms) == 0 {
		_, err := fmt.Fprintln(out, "No rooms added yet.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ROOM\tCATEGORY\tLENGTH (FT)\tBREADTH (FT)\tAREA (SQFT)"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "----\t--------\t-----------\t------------\t-----------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, r := range rooms {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\n",
			r.Name, r.Category, r.LengthFt, r.BreadthFt, r.AreaSqft,
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printTotals prints carpet and claimed areas in both units.
func printTotals(w io.Writer, t area.Totals) error {
	if _, err := fmt.Fprintf(w, "Total Carpet Area:      %.2f sq ft = %.2f sq yd\n", t.TotalSqft, t.TotalSqyd); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Claimed Area (÷ %.2f):  %.2f sq ft = %.2f sq yd\n", area.EfficiencyRatio, t.ClaimedSqft, t.ClaimedSqyd)
	return err
}

// printPropertySummary prints a single property in text format.
func printPropertySummary(w io.Writer, p *property.Property) error {
	if _, err := fmt.Fprintf(w, "Property %q\n\n", p.Name); err != nil {
		return err
	}
	if err := printRoomTable(w, p.Rooms); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return printTotals(w, p.Totals)
}

// printComparisonTable prints saved properties side by side. The property
// with the largest carpet area is marked with an asterisk.
func printComparisonTable(out io.Writer, rows []property.Comparison) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No saved properties.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "NAME\tROOMS\tCARPET (SQFT)\tCARPET (SQYD)\tCLAIMED (SQFT)\tCLAIMED (SQYD)\t"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "----\t-----\t-------------\t-------------\t--------------\t--------------\t"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, r := range rows {
		mark := ""
		if r.Largest {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			r.Name, r.RoomCount, r.TotalSqft, r.TotalSqyd, r.ClaimedSqft, r.ClaimedSqyd, mark,
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printPlan prints where each room sits in the stacked diagram.
func printPlan(out io.Writer, plan *layout.Plan) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(w, "%s (%.1f x %.1f ft)\n", layout.Title, plan.Width, plan.Height); err != nil {
		return err
	}
	for _, pl := range plan.Placements {
		if _, err := fmt.Fprintf(w, "%s\tat (%.1f, %.1f)\t%.1f x %.1f\n",
			pl.Label, pl.X, pl.Y, pl.Width, pl.Height,
		); err != nil {
			return fmt.Errorf("writing placement: %w", err)
		}
	}
	return w.Flush()
}
