package enaflow

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hydrosphere/enaflow/rules"
	"github.com/hydrosphere/enaflow/stations"
)

// ErrUnknownDimension reports a request for a grouping dimension that
// was not supplied at construction time.
var ErrUnknownDimension = errors.New("grouping dimension not present")

// Productivity maps station codes to the coefficient that converts
// flow into natural affluent energy.
type Productivity map[stations.Code]float64

// Validate checks that the table carries at least one entry.
func (p Productivity) Validate() error {
	if len(p) == 0 {
		return errors.New("productivity table is empty")
	}
	return nil
}

// GroupingTable relates station codes to one label within a single
// grouping dimension (subsystem, equivalent-energy reservoir, basin).
type GroupingTable struct {
	Dimension string
	Labels    map[stations.Code]string
}

// Validate enforces the two-column shape: a named dimension plus the
// code-to-label relation.
func (g GroupingTable) Validate() error {
	if g.Dimension == "" {
		return errors.New("grouping table has no dimension name")
	}
	if len(g.Labels) == 0 {
		return fmt.Errorf("grouping table %q is empty", g.Dimension)
	}
	return nil
}

// Groupings holds every grouping dimension known to the caller.
type Groupings struct {
	dimensions map[string]GroupingTable
}

// NewGroupings validates and indexes the supplied grouping tables.
func NewGroupings(tables ...GroupingTable) (Groupings, error) {
	g := Groupings{dimensions: make(map[string]GroupingTable, len(tables))}
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return Groupings{}, err
		}
		if _, ok := g.dimensions[t.Dimension]; ok {
			return Groupings{}, fmt.Errorf("duplicate grouping dimension %q", t.Dimension)
		}
		g.dimensions[t.Dimension] = t
	}
	return g, nil
}

// Dimension returns one grouping table by name. Unknown names fail
// before any join is attempted.
func (g Groupings) Dimension(name string) (GroupingTable, error) {
	t, ok := g.dimensions[name]
	if !ok {
		return GroupingTable{}, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
	}
	return t, nil
}

// Names returns the available dimension names, sorted.
func (g Groupings) Names() []string {
	out := make([]string, 0, len(g.dimensions))
	for name := range g.dimensions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// productivityDoc is the TOML shape of the productivity table. Pointer
// fields distinguish absent keys from zero values.
type productivityDoc struct {
	Station []struct {
		Code         *int     `toml:"code"`
		Productivity *float64 `toml:"productivity"`
	} `toml:"station"`
}

// DecodeProductivity reads a productivity table from TOML. Both fields
// are required for every entry.
func DecodeProductivity(data string) (Productivity, error) {
	var doc productivityDoc
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("productivity table: %w", err)
	}
	return decodeProductivityDoc(doc)
}

// LoadProductivity reads a productivity table from a TOML file.
func LoadProductivity(path string) (Productivity, error) {
	var doc productivityDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("productivity table %s: %w", path, err)
	}
	return decodeProductivityDoc(doc)
}

func decodeProductivityDoc(doc productivityDoc) (Productivity, error) {
	p := make(Productivity, len(doc.Station))
	for i, entry := range doc.Station {
		if entry.Code == nil {
			return nil, fmt.Errorf("productivity table: entry %d is missing the code field", i+1)
		}
		if entry.Productivity == nil {
			return nil, fmt.Errorf("productivity table: station %d is missing the productivity field", *entry.Code)
		}
		code := stations.Code(*entry.Code)
		if _, ok := p[code]; ok {
			return nil, fmt.Errorf("productivity table: duplicate station %d", code)
		}
		p[code] = *entry.Productivity
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// hydrographDoc is the TOML shape of the hydrograph table.
type hydrographDoc struct {
	Month []struct {
		Month *int     `toml:"month"`
		Flow  *float64 `toml:"flow"`
	} `toml:"month"`
}

// DecodeHydrograph reads the Belo Monte hydrograph from TOML: exactly
// one flow value per calendar month.
func DecodeHydrograph(data string) (rules.Hydrograph, error) {
	var doc hydrographDoc
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("hydrograph table: %w", err)
	}
	return decodeHydrographDoc(doc)
}

// LoadHydrograph reads the Belo Monte hydrograph from a TOML file.
func LoadHydrograph(path string) (rules.Hydrograph, error) {
	var doc hydrographDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("hydrograph table %s: %w", path, err)
	}
	return decodeHydrographDoc(doc)
}

func decodeHydrographDoc(doc hydrographDoc) (rules.Hydrograph, error) {
	h := make(rules.Hydrograph, 12)
	for i, entry := range doc.Month {
		if entry.Month == nil {
			return nil, fmt.Errorf("hydrograph table: entry %d is missing the month field", i+1)
		}
		if entry.Flow == nil {
			return nil, fmt.Errorf("hydrograph table: month %d is missing the flow field", *entry.Month)
		}
		if *entry.Month < 1 || *entry.Month > 12 {
			return nil, fmt.Errorf("hydrograph table: month %d out of range", *entry.Month)
		}
		m := time.Month(*entry.Month)
		if _, ok := h[m]; ok {
			return nil, fmt.Errorf("hydrograph table: duplicate month %d", m)
		}
		h[m] = *entry.Flow
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// DecodeGroupings reads grouping tables from TOML. Each top-level
// table is one dimension mapping station codes (as string keys) to
// group labels:
//
//	[subsystem]
//	117 = "SE/CO"
func DecodeGroupings(data string) (Groupings, error) {
	var doc map[string]map[string]string
	if _, err := toml.Decode(data, &doc); err != nil {
		return Groupings{}, fmt.Errorf("grouping table: %w", err)
	}
	return decodeGroupingsDoc(doc)
}

// LoadGroupings reads grouping tables from a TOML file.
func LoadGroupings(path string) (Groupings, error) {
	var doc map[string]map[string]string
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return Groupings{}, fmt.Errorf("grouping table %s: %w", path, err)
	}
	return decodeGroupingsDoc(doc)
}

func decodeGroupingsDoc(doc map[string]map[string]string) (Groupings, error) {
	tables := make([]GroupingTable, 0, len(doc))
	for dimension, entries := range doc {
		labels := make(map[stations.Code]string, len(entries))
		for key, label := range entries {
			n, err := strconv.Atoi(key)
			if err != nil {
				return Groupings{}, fmt.Errorf("grouping table %q: key %q is not a numeric station code", dimension, key)
			}
			labels[stations.Code(n)] = label
		}
		tables = append(tables, GroupingTable{Dimension: dimension, Labels: labels})
	}
	return NewGroupings(tables...)
}
