package rules

import (
	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// ItiquiraII reports the Itiquira I flow under the Itiquira II code.
type ItiquiraII struct {
	itiquiraI []float64
}

func NewItiquiraII(f *series.Frame) (*ItiquiraII, error) {
	it, err := column(f, stations.ItiquiraI)
	if err != nil {
		return nil, err
	}
	return &ItiquiraII{itiquiraI: it}, nil
}

func (r *ItiquiraII) Code() stations.Code { return stations.ItiquiraII }

func (r *ItiquiraII) Calculate() series.Series {
	return series.Series{Code: r.Code(), Values: series.Clone(r.itiquiraI)}
}
