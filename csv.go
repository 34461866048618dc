package enaflow

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hydrosphere/enaflow/series"
)

// ReadFlowsCSV reads a measured flow dataset: a header with a date
// column followed by numeric station codes, then one row per day.
// Empty cells are missing measurements. All validation happens in the
// series layer.
func ReadFlowsCSV(r io.Reader) (*series.Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading flow csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("flow csv is empty")
	}
	return series.FromRecords(records[0], records[1:])
}

// WriteFrameCSV writes a frame in the same shape ReadFlowsCSV accepts.
// Missing values become empty cells.
func WriteFrameCSV(w io.Writer, f *series.Frame) error {
	cw := csv.NewWriter(w)

	codes := f.Codes()
	header := make([]string, 0, len(codes)+1)
	header = append(header, "date")
	for _, code := range codes {
		header = append(header, strconv.Itoa(int(code)))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	times := f.Times()
	row := make([]string, len(header))
	for i, ts := range times {
		row[0] = ts.Format(series.DateLayout)
		for j, code := range codes {
			col, _ := f.Column(code)
			row[j+1] = formatValue(col[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGroupedCSV writes grouped ENA sums, one column per group label.
func WriteGroupedCSV(w io.Writer, g *GroupedENA) error {
	cw := csv.NewWriter(w)

	header := append([]string{"date"}, g.Groups...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, ts := range g.Times {
		row[0] = ts.Format(series.DateLayout)
		for j, label := range g.Groups {
			row[j+1] = formatValue(g.Values[label][i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	if series.IsMissing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
