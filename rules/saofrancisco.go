package rules

import (
	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// PauloAfonso reports the Moxotó flow under the Paulo Afonso code.
type PauloAfonso struct {
	moxoto []float64
}

func NewPauloAfonso(f *series.Frame) (*PauloAfonso, error) {
	mx, err := column(f, stations.Moxoto)
	if err != nil {
		return nil, err
	}
	return &PauloAfonso{moxoto: mx}, nil
}

func (r *PauloAfonso) Code() stations.Code { return stations.PauloAfonso }

func (r *PauloAfonso) Calculate() series.Series {
	return series.Series{Code: r.Code(), Values: series.Clone(r.moxoto)}
}

// Complexo reports the Moxotó flow under the Complexo code.
type Complexo struct {
	moxoto []float64
}

func NewComplexo(f *series.Frame) (*Complexo, error) {
	mx, err := column(f, stations.Moxoto)
	if err != nil {
		return nil, err
	}
	return &Complexo{moxoto: mx}, nil
}

func (r *Complexo) Code() stations.Code { return stations.Complexo }

func (r *Complexo) Calculate() series.Series {
	return series.Series{Code: r.Code(), Values: series.Clone(r.moxoto)}
}
