package batch

import (
	"fmt"

	"Vesselcalc/internal/calc/vessel"

	"github.com/xuri/excelize/v2"
)

const (
	TableSheet   = "Capacity"
	SummarySheet = "Vessel"
)

var tableHeader = []any{"Height, m", "Height, %", "Volume, m³", "Volume, %", "Wetted area, m²", "Area, %"}

// TableWorkbook writes the capacity table of v and its datasheet into a new
// workbook. The caller closes the file.
func TableWorkbook(v *vessel.Vessel, n int) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", TableSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(TableSheet, "A1", &tableHeader); err != nil {
		f.Close()
		return nil, err
	}
	for i, r := range v.Table(n) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []any{r.Height, r.HeightFraction * 100, r.Volume, r.VolumeFraction * 100, r.WettedArea, r.AreaFraction * 100}
		if err := f.SetSheetRow(TableSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	s := v.Summary()
	if err := f.SetSheetRow(SummarySheet, "A1", &[]any{"Kind", s.Label}); err != nil {
		f.Close()
		return nil, err
	}
	for i, l := range s.Lines() {
		row := []any{l[0], l[1]}
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
