// Package series implements the tabular model the derivation engine
// operates on: flow values aligned on one shared, strictly increasing
// daily time axis, one column per station code. Missing values are
// represented as NaN.
package series

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hydrosphere/enaflow/stations"
)

// DateLayout is the timestamp format accepted in tabular input.
const DateLayout = "2006-01-02"

// Series is one named column of flow (or energy) values, aligned to the
// time axis of the Frame it was derived from.
type Series struct {
	Code   stations.Code
	Values []float64
}

// Frame is a timestamp-indexed table with one float column per station
// code. All columns share the same time axis. Columns are append-only:
// a code can be added once and never replaced.
type Frame struct {
	times []time.Time
	order []stations.Code
	cols  map[stations.Code][]float64
}

// NewFrame creates an empty frame over the given time axis. The axis
// must be strictly increasing.
func NewFrame(times []time.Time) (*Frame, error) {
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return nil, fmt.Errorf("time axis not strictly increasing at position %d (%s)",
				i, times[i].Format(DateLayout))
		}
	}
	f := &Frame{
		times: append([]time.Time(nil), times...),
		cols:  make(map[stations.Code][]float64),
	}
	return f, nil
}

// Len returns the number of time steps.
func (f *Frame) Len() int { return len(f.times) }

// Times returns the shared time axis. Callers must not modify it.
func (f *Frame) Times() []time.Time { return f.times }

// Codes returns the column codes in insertion order.
func (f *Frame) Codes() []stations.Code {
	return append([]stations.Code(nil), f.order...)
}

// Column returns the values for a station code. The returned slice is
// shared with the frame and must be treated as read-only.
func (f *Frame) Column(code stations.Code) ([]float64, bool) {
	v, ok := f.cols[code]
	return v, ok
}

// AddColumn appends a column for a station code. The column length must
// match the time axis and the code must not already be present.
func (f *Frame) AddColumn(code stations.Code, values []float64) error {
	if _, ok := f.cols[code]; ok {
		return fmt.Errorf("duplicate column for station %d (%s)", code, stations.Name(code))
	}
	if len(values) != len(f.times) {
		return fmt.Errorf("column for station %d has %d values, time axis has %d",
			code, len(values), len(f.times))
	}
	f.cols[code] = values
	f.order = append(f.order, code)
	return nil
}

// AddSeries appends a derived series as a column.
func (f *Frame) AddSeries(s Series) error {
	return f.AddColumn(s.Code, s.Values)
}

// FromRecords builds a validated frame from raw tabular input. The
// first header field names the date column; every other header field
// must coerce to a numeric station code. Row cells must parse as
// floats; empty cells become NaN (missing measurement). Timestamps must
// parse with DateLayout and be strictly increasing.
func FromRecords(header []string, rows [][]string) (*Frame, error) {
	if len(header) < 2 {
		return nil, fmt.Errorf("input needs a date column and at least one station column, got %d columns", len(header))
	}

	codes := make([]stations.Code, 0, len(header)-1)
	for _, label := range header[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(label))
		if err != nil {
			return nil, fmt.Errorf("column label %q is not a numeric station code", label)
		}
		codes = append(codes, stations.Code(n))
	}

	times := make([]time.Time, 0, len(rows))
	cols := make([][]float64, len(codes))
	for i := range cols {
		cols[i] = make([]float64, 0, len(rows))
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
		ts, err := time.Parse(DateLayout, strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid timestamp %q: %w", i+1, row[0], err)
		}
		times = append(times, ts)

		for j, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				cols[j] = append(cols[j], math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, station %d: invalid value %q", i+1, codes[j], cell)
			}
			cols[j] = append(cols[j], v)
		}
	}

	f, err := NewFrame(times)
	if err != nil {
		return nil, err
	}
	for j, code := range codes {
		if err := f.AddColumn(code, cols[j]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Clone copies a value slice so rules can operate without mutating
// their inputs.
func Clone(values []float64) []float64 {
	return append([]float64(nil), values...)
}

// IsMissing reports whether a value represents a missing measurement.
func IsMissing(v float64) bool { return math.IsNaN(v) }
