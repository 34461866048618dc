package rules

import (
	"math"

	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// jordaoDiversionLimit is the maximum flow the Jordão-Segredo diversion
// tunnel carries.
const jordaoDiversionLimit = 173.5

// JordaoArtificial is the Jordão flow left after the diversion to
// Segredo: jordao - min(173.5, jordao - 10).
type JordaoArtificial struct {
	jordao []float64
}

func NewJordaoArtificial(f *series.Frame) (*JordaoArtificial, error) {
	jd, err := column(f, stations.Jordao)
	if err != nil {
		return nil, err
	}
	return &JordaoArtificial{jordao: jd}, nil
}

func (r *JordaoArtificial) Code() stations.Code { return stations.JordaoArtificial }

func (r *JordaoArtificial) Calculate() series.Series {
	v := make([]float64, len(r.jordao))
	for i, flow := range r.jordao {
		v[i] = flow - math.Min(jordaoDiversionLimit, flow-10)
	}
	return series.Series{Code: r.Code(), Values: v}
}

// SegredoArtificial adds the diverted Jordão flow to Segredo:
// segredo + min(jordao - 10, 173.5), evaluated per time step.
type SegredoArtificial struct {
	segredo, jordao []float64
}

func NewSegredoArtificial(f *series.Frame) (*SegredoArtificial, error) {
	sg, err := column(f, stations.Segredo)
	if err != nil {
		return nil, err
	}
	jd, err := column(f, stations.Jordao)
	if err != nil {
		return nil, err
	}
	return &SegredoArtificial{segredo: sg, jordao: jd}, nil
}

func (r *SegredoArtificial) Code() stations.Code { return stations.SegredoArtificial }

func (r *SegredoArtificial) Calculate() series.Series {
	v := make([]float64, len(r.segredo))
	for i := range v {
		v[i] = r.segredo[i] + math.Min(r.jordao[i]-10, jordaoDiversionLimit)
	}
	return series.Series{Code: r.Code(), Values: v}
}
