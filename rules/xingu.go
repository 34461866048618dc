package rules

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// Hydrograph is the Belo Monte reference curve: one average expected
// flow per calendar month. It is the comparison baseline for the
// Pimental diversion.
type Hydrograph map[time.Month]float64

// Validate checks that all twelve months are present.
func (h Hydrograph) Validate() error {
	for m := time.January; m <= time.December; m++ {
		if _, ok := h[m]; !ok {
			return fmt.Errorf("hydrograph missing month %d", m)
		}
	}
	return nil
}

// beloMonteMaxDiversion is the maximum flow divertible from Pimental to
// the Belo Monte powerhouse.
const beloMonteMaxDiversion = 13900

// BeloMonteArtificial derives the flow diverted from Pimental to Belo
// Monte. For each day the measured Pimental flow is compared against
// the hydrograph value for that calendar month: no diversion below the
// hydrograph, the full excess up to the maximum, flat maximum beyond.
type BeloMonteArtificial struct {
	pimental   []float64
	times      []time.Time
	hydrograph Hydrograph
}

func NewBeloMonteArtificial(f *series.Frame, h Hydrograph) (*BeloMonteArtificial, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	pm, err := column(f, stations.Pimental)
	if err != nil {
		return nil, err
	}
	return &BeloMonteArtificial{pimental: pm, times: f.Times(), hydrograph: h}, nil
}

func (r *BeloMonteArtificial) Code() stations.Code { return stations.BeloMonteArtificial }

// divert computes one day's diversion. Equality with
// hydrograph + maximum takes the subtraction branch, which yields
// exactly the maximum; only strict excess takes the flat branch.
func (r *BeloMonteArtificial) divert(pimental, hydrograph float64) float64 {
	switch {
	case pimental < hydrograph:
		return 0
	case pimental > hydrograph+beloMonteMaxDiversion:
		return beloMonteMaxDiversion
	default:
		return pimental - hydrograph
	}
}

func (r *BeloMonteArtificial) Calculate() series.Series {
	v := make([]float64, len(r.pimental))
	for i, flow := range r.pimental {
		v[i] = r.divert(flow, r.hydrograph[r.times[i].Month()])
	}
	return series.Series{Code: r.Code(), Values: v}
}

// PimentalArtificial is the Pimental flow left after the Belo Monte
// diversion. Together the two always sum back to the measured Pimental
// flow.
type PimentalArtificial struct {
	pimental, beloMonte []float64
}

func NewPimentalArtificial(f *series.Frame, beloMonte series.Series) (*PimentalArtificial, error) {
	pm, err := column(f, stations.Pimental)
	if err != nil {
		return nil, err
	}
	bm, err := dependency(f, beloMonte, stations.BeloMonteArtificial)
	if err != nil {
		return nil, err
	}
	return &PimentalArtificial{pimental: pm, beloMonte: bm}, nil
}

func (r *PimentalArtificial) Code() stations.Code { return stations.PimentalArtificial }

func (r *PimentalArtificial) Calculate() series.Series {
	v := series.Clone(r.pimental)
	floats.Sub(v, r.beloMonte)
	return series.Series{Code: r.Code(), Values: v}
}
