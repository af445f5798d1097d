package batch

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Vesselcalc/internal/calc/vessel"

	"github.com/xuri/excelize/v2"
)

// Columns of an import sheet. The first row is a header and is skipped.
// Only kind and diameter are required.
var Columns = []string{
	"kind", "diameter", "length", "head_distance",
	"high_liquid_level", "low_liquid_level", "liquid_level",
	"flow_rate", "overflow", "fd", "fk",
}

type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

type ImportResult struct {
	Rows    int        `json:"rows"`
	Skipped []RowError `json:"skipped,omitempty"`
	Result
}

// Import reads vessel rows from the first sheet of an xlsx workbook and
// calculates them as one batch. Rows that do not parse are reported and
// left out.
func Import(ctx context.Context, r io.Reader, limit int) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ImportResult{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return ImportResult{}, ErrEmpty
	}

	inputs, skipped := ParseRows(rows[1:])
	out := ImportResult{Rows: len(rows) - 1, Skipped: skipped}
	if len(inputs) == 0 {
		return out, nil
	}
	res, err := Calculate(ctx, Input{Items: inputs}, limit)
	if err != nil {
		return ImportResult{}, err
	}
	out.Result = res
	return out, nil
}

// ParseRows converts sheet rows to inputs. Row numbers in the errors are
// 1-based sheet rows, counting the header.
func ParseRows(rows [][]string) ([]vessel.Input, []RowError) {
	var (
		inputs  []vessel.Input
		skipped []RowError
	)
	for i, row := range rows {
		if blank(row) {
			continue
		}
		in, err := parseRow(row)
		if err != nil {
			skipped = append(skipped, RowError{Row: i + 2, Err: err.Error()})
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, skipped
}

func parseRow(row []string) (vessel.Input, error) {
	if len(row) < 2 {
		return vessel.Input{}, fmt.Errorf("want at least 2 columns, got %d", len(row))
	}
	in := vessel.Input{Kind: vessel.Kind(strings.TrimSpace(row[0]))}
	fields := []*float64{
		&in.Diameter, &in.Length, &in.HeadDistance,
		&in.High, &in.Low, &in.Liquid, &in.FlowRate,
	}
	for j, dst := range fields {
		col := j + 1
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := toFloat(row[col])
		if err != nil {
			return vessel.Input{}, fmt.Errorf("%s: %w", Columns[col], err)
		}
		*dst = v
	}
	if len(row) > 8 {
		switch strings.ToLower(strings.TrimSpace(row[8])) {
		case "1", "true", "yes", "y":
			in.Overflow = true
		}
	}
	for j, dst := range []*float64{&in.Fd, &in.Fk} {
		col := 9 + j
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := toFloat(row[col])
		if err != nil {
			return vessel.Input{}, fmt.Errorf("%s: %w", Columns[col], err)
		}
		*dst = v
	}
	return in, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// toFloat accepts a decimal comma. With a decimal point present, commas are
// thousands separators.
func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}
