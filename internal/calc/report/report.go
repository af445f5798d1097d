// Package report renders a vessel datasheet as PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"Vesselcalc/internal/calc/vessel"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Points  int          `json:"table_points"`
	Vessel  vessel.Input `json:"vessel"`
}

// Write builds the vessel described by in and writes its datasheet and
// capacity table to w.
func Write(w io.Writer, in Input, now time.Time) error {
	v, err := vessel.Build(in.Vessel)
	if err != nil {
		return err
	}
	if in.Title == "" {
		in.Title = "Vessel Datasheet"
	}
	s := v.Summary()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Vessel: %s", s.Label))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Geometry")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range s.Lines() {
		pdf.CellFormat(70, 6, l[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr(l[1]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Capacity table")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 9)
	for _, h := range []string{"Height, m", "Height, %", "Volume, m3", "Volume, %", "Wetted, m2", "Area, %"} {
		pdf.CellFormat(30, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, r := range v.Table(in.Points) {
		for _, c := range []float64{r.Height, r.HeightFraction * 100, r.Volume, r.VolumeFraction * 100, r.WettedArea, r.AreaFraction * 100} {
			pdf.CellFormat(30, 5, fmt.Sprintf("%.3f", c), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if in.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}
	return pdf.Output(w)
}
