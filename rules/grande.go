package rules

import (
	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// Itutinga reports the Camargos flow under the Itutinga code.
type Itutinga struct {
	camargos []float64
}

func NewItutinga(f *series.Frame) (*Itutinga, error) {
	cm, err := column(f, stations.Camargos)
	if err != nil {
		return nil, err
	}
	return &Itutinga{camargos: cm}, nil
}

func (r *Itutinga) Code() stations.Code { return stations.Itutinga }

func (r *Itutinga) Calculate() series.Series {
	return series.Series{Code: r.Code(), Values: series.Clone(r.camargos)}
}
