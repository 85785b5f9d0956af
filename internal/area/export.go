package area

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SummaryHeader is the header row of the exported room table.
var SummaryHeader = []string{"Room", "Category", "Length (ft)", "Breadth (ft)", "Area (sqft)"}

// SummaryFilename is the suggested download name for the CSV table.
const SummaryFilename = "area_summary.csv"

// WriteCSV writes the room table as comma-separated text.
func WriteCSV(w io.Writer, rooms []Room) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range rooms {
		record := []string{
			r.Name,
			string(r.Category),
			formatNumber(r.LengthFt),
			formatNumber(r.BreadthFt),
			formatNumber(r.AreaSqft),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %s: %w", r.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

const summarySheet = "Area Summary"

// WriteXLSX writes the room table and the totals to an Excel workbook.
func WriteXLSX(w io.Writer, rooms []Room, totals Totals) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := setRow(f, 1, toCells(SummaryHeader)); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "A", "E", 16); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}

	row := 2
	for _, r := range rooms {
		if err := setRow(f, row, []interface{}{r.Name, string(r.Category), r.LengthFt, r.BreadthFt, r.AreaSqft}); err != nil {
			return err
		}
		row++
	}

	row++
	summary := [][]interface{}{
		{"Total Carpet Area (sqft)", totals.TotalSqft},
		{"Total Carpet Area (sqyd)", totals.TotalSqyd},
		{"Claimed Area (sqft)", totals.ClaimedSqft},
		{"Claimed Area (sqyd)", totals.ClaimedSqyd},
	}
	for _, cells := range summary {
		if err := setRow(f, row, cells); err != nil {
			return err
		}
		row++
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("converting coordinates: %w", err)
	}
	if err := f.SetSheetRow(summarySheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
