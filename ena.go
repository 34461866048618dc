// Package enaflow converts raw streamflow measurements into natural
// affluent energy (ENA). It reconstructs the artificial and natural
// flow series the published calculation memorandum defines for seven
// basins, converts flows into energy with per-station productivity
// coefficients and aggregates the result by caller-chosen groupings.
package enaflow

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/hydrosphere/enaflow/rules"
	"github.com/hydrosphere/enaflow/series"
)

// Calculator is the engine's entry point. It is constructed once per
// measured dataset and holds only immutable inputs, so all of its
// methods are safe for repeated and concurrent use.
type Calculator struct {
	flows        *series.Frame
	productivity Productivity
	groupings    Groupings
	hydrograph   rules.Hydrograph
}

// NewCalculator validates all reference tables eagerly and returns a
// calculator over the measured flow dataset.
func NewCalculator(flows *series.Frame, productivity Productivity, groupings Groupings, hydrograph rules.Hydrograph) (*Calculator, error) {
	if flows == nil || len(flows.Codes()) == 0 {
		return nil, fmt.Errorf("measured dataset is empty")
	}
	if err := productivity.Validate(); err != nil {
		return nil, err
	}
	if err := hydrograph.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{
		flows:        flows,
		productivity: productivity,
		groupings:    groupings,
		hydrograph:   hydrograph,
	}, nil
}

// AugmentedFlows runs all seven basin composers and merges their
// derived series with the measured columns into one table. The basins
// are independent of each other, so they run concurrently; the merge
// order is fixed, so the result is deterministic.
func (c *Calculator) AugmentedFlows() (*series.Frame, error) {
	composers := []struct {
		name string
		run  func() (*series.Frame, error)
	}{
		{"alto tietê", func() (*series.Frame, error) { return rules.AltoTiete(c.flows) }},
		{"paraíba do sul", func() (*series.Frame, error) { return rules.ParaibaDoSul(c.flows) }},
		{"são francisco", func() (*series.Frame, error) { return rules.SaoFrancisco(c.flows) }},
		{"iguaçu", func() (*series.Frame, error) { return rules.Iguacu(c.flows) }},
		{"grande", func() (*series.Frame, error) { return rules.Grande(c.flows) }},
		{"paraguai", func() (*series.Frame, error) { return rules.Paraguai(c.flows) }},
		{"xingu", func() (*series.Frame, error) { return rules.Xingu(c.flows, c.hydrograph) }},
	}

	type result struct {
		frame *series.Frame
		err   error
	}
	results := make([]result, len(composers))

	var wg sync.WaitGroup
	for i, comp := range composers {
		wg.Add(1)
		i, comp := i, comp
		go func() {
			defer wg.Done()
			f, err := comp.run()
			results[i] = result{frame: f, err: err}
		}()
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	merged, err := series.NewFrame(c.flows.Times())
	if err != nil {
		return nil, err
	}
	for _, code := range c.flows.Codes() {
		col, _ := c.flows.Column(code)
		if err := merged.AddColumn(code, col); err != nil {
			return nil, err
		}
	}
	for i, r := range results {
		for _, code := range r.frame.Codes() {
			col, _ := r.frame.Column(code)
			if err := merged.AddColumn(code, col); err != nil {
				return nil, fmt.Errorf("%s: %w", composers[i].name, err)
			}
		}
	}
	return merged, nil
}

// ENA converts a flow table into natural affluent energy by scaling
// each station column with its productivity coefficient. Stations
// without a coefficient yield a missing (NaN) column, not zero: the
// left-join semantics downstream consumers rely on.
func (c *Calculator) ENA(flows *series.Frame) (*series.Frame, error) {
	out, err := series.NewFrame(flows.Times())
	if err != nil {
		return nil, err
	}
	for _, code := range flows.Codes() {
		col, _ := flows.Column(code)
		v := series.Clone(col)
		if p, ok := c.productivity[code]; ok {
			floats.Scale(p, v)
		} else {
			for i := range v {
				v[i] = math.NaN()
			}
		}
		if err := out.AddColumn(code, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// GroupedENA is ENA summed per group label over the shared time axis.
type GroupedENA struct {
	Times  []time.Time
	Groups []string // sorted label order
	Values map[string][]float64
}

// GroupBy sums an ENA table per group and time step using one grouping
// table. Stations absent from the table are silently dropped from the
// sums; missing ENA values contribute nothing.
func GroupBy(ena *series.Frame, table GroupingTable) (*GroupedENA, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	sums := make(map[string][]float64)
	for _, code := range ena.Codes() {
		label, ok := table.Labels[code]
		if !ok {
			continue
		}
		dst, ok := sums[label]
		if !ok {
			dst = make([]float64, ena.Len())
			sums[label] = dst
		}
		col, _ := ena.Column(code)
		for i, v := range col {
			if !series.IsMissing(v) {
				dst[i] += v
			}
		}
	}

	groups := make([]string, 0, len(sums))
	for label := range sums {
		groups = append(groups, label)
	}
	sort.Strings(groups)

	return &GroupedENA{Times: ena.Times(), Groups: groups, Values: sums}, nil
}

// Group aggregates an ENA table over one of the configured grouping
// dimensions. Unknown dimensions fail before any join runs.
func (c *Calculator) Group(ena *series.Frame, dimension string) (*GroupedENA, error) {
	table, err := c.groupings.Dimension(dimension)
	if err != nil {
		return nil, err
	}
	return GroupBy(ena, table)
}
