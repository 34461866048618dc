// Package rules implements the calculation memorandum that reconstructs
// artificial and natural flow series from measured ones. Each rule is a
// pure function of the series it was constructed with and produces one
// output series named by its station code. The basin composers run the
// rules of each of the seven basins in their fixed dependency order.
package rules

import (
	"errors"
	"fmt"

	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// Rule is one unit of the derivation procedure. Calculate is
// deterministic and side-effect free: the same constructor inputs
// always yield the same output series.
type Rule interface {
	Code() stations.Code
	Calculate() series.Series
}

// ErrMissingStation reports that a rule's required input series is
// absent from the dataset. Rules fail loudly instead of emitting
// missing values, since dependent rules would silently propagate
// garbage otherwise.
var ErrMissingStation = errors.New("required station series missing")

// column extracts a required measured or previously merged column.
func column(f *series.Frame, code stations.Code) ([]float64, error) {
	v, ok := f.Column(code)
	if !ok {
		return nil, fmt.Errorf("%w: %d (%s)", ErrMissingStation, code, stations.Name(code))
	}
	return v, nil
}

// dependency validates a series produced by an upstream rule before it
// is consumed by a dependent one.
func dependency(f *series.Frame, s series.Series, want stations.Code) ([]float64, error) {
	if s.Code != want {
		return nil, fmt.Errorf("dependency mismatch: got station %d (%s), want %d (%s)",
			s.Code, stations.Name(s.Code), want, stations.Name(want))
	}
	if len(s.Values) != f.Len() {
		return nil, fmt.Errorf("dependency %d (%s) has %d values, time axis has %d",
			s.Code, stations.Name(s.Code), len(s.Values), f.Len())
	}
	return s.Values, nil
}
