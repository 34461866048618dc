package rules

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// SantaCeciliaConfig sets the flow brackets of the Santa Cecília
// pumping rule. The published defaults come from the series-update
// memorandum; the proportional bracket always scales by 119/190
// regardless of the configured lower limit.
type SantaCeciliaConfig struct {
	LowerLimit  float64 // proportional bracket, inclusive
	MiddleLimit float64 // flat 119 bracket, inclusive
	UpperLimit  float64 // v - 90 bracket, inclusive; above it the pumping is flat 160
}

// DefaultSantaCeciliaConfig returns the published bracket limits.
func DefaultSantaCeciliaConfig() SantaCeciliaConfig {
	return SantaCeciliaConfig{LowerLimit: 190, MiddleLimit: 205, UpperLimit: 250}
}

// SantaCeciliaPumping derives the flow pumped at Santa Cecília from the
// measured Santa Cecília flow via a piecewise bracket transform.
type SantaCeciliaPumping struct {
	santaCecilia []float64
	cfg          SantaCeciliaConfig
}

func NewSantaCeciliaPumping(f *series.Frame, cfg SantaCeciliaConfig) (*SantaCeciliaPumping, error) {
	sc, err := column(f, stations.SantaCecilia)
	if err != nil {
		return nil, err
	}
	return &SantaCeciliaPumping{santaCecilia: sc, cfg: cfg}, nil
}

func (r *SantaCeciliaPumping) Code() stations.Code { return stations.SantaCeciliaPumping }

// pump applies the bracket transform to one flow value.
func (r *SantaCeciliaPumping) pump(v float64) float64 {
	switch {
	case v <= r.cfg.LowerLimit:
		return v * 119 / 190
	case v <= r.cfg.MiddleLimit:
		return 119
	case v <= r.cfg.UpperLimit:
		return v - 90
	default:
		return 160
	}
}

func (r *SantaCeciliaPumping) Calculate() series.Series {
	v := make([]float64, len(r.santaCecilia))
	for i, flow := range r.santaCecilia {
		v[i] = r.pump(flow)
	}
	return series.Series{Code: r.Code(), Values: v}
}

// TocosSpill derives the flow spilled at Tocos: max(0, tocos - 25).
type TocosSpill struct {
	tocos []float64
}

func NewTocosSpill(f *series.Frame) (*TocosSpill, error) {
	tc, err := column(f, stations.Tocos)
	if err != nil {
		return nil, err
	}
	return &TocosSpill{tocos: tc}, nil
}

func (r *TocosSpill) Code() stations.Code { return stations.TocosSpill }

func (r *TocosSpill) Calculate() series.Series {
	v := make([]float64, len(r.tocos))
	for i, flow := range r.tocos {
		v[i] = math.Max(0, flow-25)
	}
	return series.Series{Code: r.Code(), Values: v}
}

// SantanaNatural reconstructs the natural Santana flow from Tocos and
// Lajes. The 0.997 adjustment factor comes from the daily regression
// correlations published with the flow-forecast process data.
type SantanaNatural struct {
	tocos, lajes []float64
}

func NewSantanaNatural(f *series.Frame) (*SantanaNatural, error) {
	tc, err := column(f, stations.Tocos)
	if err != nil {
		return nil, err
	}
	lj, err := column(f, stations.Lajes)
	if err != nil {
		return nil, err
	}
	return &SantanaNatural{tocos: tc, lajes: lj}, nil
}

func (r *SantanaNatural) Code() stations.Code { return stations.Santana }

func (r *SantanaNatural) Calculate() series.Series {
	v := series.Clone(r.tocos)
	floats.Add(v, r.lajes)
	floats.Scale(0.997, v)
	return series.Series{Code: r.Code(), Values: v}
}

// SantanaArtificial combines the natural Santana flow with the Tocos
// spill and the Santa Cecília pumping.
type SantanaArtificial struct {
	santana, tocos, tocosSpill, pumping []float64
}

func NewSantanaArtificial(f *series.Frame, santana, tocosSpill, pumping series.Series) (*SantanaArtificial, error) {
	sn, err := dependency(f, santana, stations.Santana)
	if err != nil {
		return nil, err
	}
	tc, err := column(f, stations.Tocos)
	if err != nil {
		return nil, err
	}
	ts, err := dependency(f, tocosSpill, stations.TocosSpill)
	if err != nil {
		return nil, err
	}
	pp, err := dependency(f, pumping, stations.SantaCeciliaPumping)
	if err != nil {
		return nil, err
	}
	return &SantanaArtificial{santana: sn, tocos: tc, tocosSpill: ts, pumping: pp}, nil
}

func (r *SantanaArtificial) Code() stations.Code { return stations.SantanaArtificial }

func (r *SantanaArtificial) Calculate() series.Series {
	v := series.Clone(r.santana)
	floats.Sub(v, r.tocos)
	floats.Add(v, r.tocosSpill)
	floats.Add(v, r.pumping)
	return series.Series{Code: r.Code(), Values: v}
}

// VigarioArtificial clamps the Santana artificial flow at the Vigário
// pumping capacity of 190.
type VigarioArtificial struct {
	santanaArtificial []float64
}

func NewVigarioArtificial(f *series.Frame, santanaArtificial series.Series) (*VigarioArtificial, error) {
	sa, err := dependency(f, santanaArtificial, stations.SantanaArtificial)
	if err != nil {
		return nil, err
	}
	return &VigarioArtificial{santanaArtificial: sa}, nil
}

func (r *VigarioArtificial) Code() stations.Code { return stations.Vigario }

func (r *VigarioArtificial) Calculate() series.Series {
	const limit = 190
	v := make([]float64, len(r.santanaArtificial))
	for i, flow := range r.santanaArtificial {
		v[i] = math.Min(flow, limit)
	}
	return series.Series{Code: r.Code(), Values: v}
}

// SantanaSpill is the Santana artificial flow in excess of what Vigário
// can take.
type SantanaSpill struct {
	santanaArtificial, vigario []float64
}

func NewSantanaSpill(f *series.Frame, santanaArtificial, vigario series.Series) (*SantanaSpill, error) {
	sa, err := dependency(f, santanaArtificial, stations.SantanaArtificial)
	if err != nil {
		return nil, err
	}
	vg, err := dependency(f, vigario, stations.Vigario)
	if err != nil {
		return nil, err
	}
	return &SantanaSpill{santanaArtificial: sa, vigario: vg}, nil
}

func (r *SantanaSpill) Code() stations.Code { return stations.SantanaSpill }

func (r *SantanaSpill) Calculate() series.Series {
	v := series.Clone(r.santanaArtificial)
	floats.Sub(v, r.vigario)
	return series.Series{Code: r.Code(), Values: v}
}

// AntaArtificial removes the diverted flows from the measured Anta
// series and restores the Santana spill.
type AntaArtificial struct {
	anta, pumping, santana, santanaSpill []float64
}

func NewAntaArtificial(f *series.Frame, pumping, santana, santanaSpill series.Series) (*AntaArtificial, error) {
	an, err := column(f, stations.Anta)
	if err != nil {
		return nil, err
	}
	pp, err := dependency(f, pumping, stations.SantaCeciliaPumping)
	if err != nil {
		return nil, err
	}
	sn, err := dependency(f, santana, stations.Santana)
	if err != nil {
		return nil, err
	}
	sp, err := dependency(f, santanaSpill, stations.SantanaSpill)
	if err != nil {
		return nil, err
	}
	return &AntaArtificial{anta: an, pumping: pp, santana: sn, santanaSpill: sp}, nil
}

func (r *AntaArtificial) Code() stations.Code { return stations.AntaArtificial }

func (r *AntaArtificial) Calculate() series.Series {
	v := series.Clone(r.anta)
	floats.Sub(v, r.pumping)
	floats.Sub(v, r.santana)
	floats.Add(v, r.santanaSpill)
	return series.Series{Code: r.Code(), Values: v}
}

// SimplicioConfig sets the flow limit of the Simplício rule. Above the
// limit the derived flow is the literal constant 340, which does not
// scale with a customized limit; that quirk is part of the published
// procedure and is preserved as-is.
type SimplicioConfig struct {
	Limit float64
}

// DefaultSimplicioConfig returns the published limit.
func DefaultSimplicioConfig() SimplicioConfig {
	return SimplicioConfig{Limit: 430}
}

// SimplicioArtificial derives the Simplício flow from the Anta
// artificial result: max(0, v - 90) up to the limit, flat 340 above it.
type SimplicioArtificial struct {
	antaArtificial []float64
	cfg            SimplicioConfig
}

func NewSimplicioArtificial(f *series.Frame, antaArtificial series.Series, cfg SimplicioConfig) (*SimplicioArtificial, error) {
	aa, err := dependency(f, antaArtificial, stations.AntaArtificial)
	if err != nil {
		return nil, err
	}
	return &SimplicioArtificial{antaArtificial: aa, cfg: cfg}, nil
}

func (r *SimplicioArtificial) Code() stations.Code { return stations.SimplicioArtificial }

func (r *SimplicioArtificial) divert(v float64) float64 {
	if v <= r.cfg.Limit {
		return math.Max(0, v-90)
	}
	return 340
}

func (r *SimplicioArtificial) Calculate() series.Series {
	v := make([]float64, len(r.antaArtificial))
	for i, flow := range r.antaArtificial {
		v[i] = r.divert(flow)
	}
	return series.Series{Code: r.Code(), Values: v}
}

// IlhaDosPombosArtificial mirrors the Anta adjustment for the Ilha dos
// Pombos station.
type IlhaDosPombosArtificial struct {
	ilhaDosPombos, pumping, santana, santanaSpill []float64
}

func NewIlhaDosPombosArtificial(f *series.Frame, pumping, santana, santanaSpill series.Series) (*IlhaDosPombosArtificial, error) {
	ip, err := column(f, stations.IlhaDosPombos)
	if err != nil {
		return nil, err
	}
	pp, err := dependency(f, pumping, stations.SantaCeciliaPumping)
	if err != nil {
		return nil, err
	}
	sn, err := dependency(f, santana, stations.Santana)
	if err != nil {
		return nil, err
	}
	sp, err := dependency(f, santanaSpill, stations.SantanaSpill)
	if err != nil {
		return nil, err
	}
	return &IlhaDosPombosArtificial{ilhaDosPombos: ip, pumping: pp, santana: sn, santanaSpill: sp}, nil
}

func (r *IlhaDosPombosArtificial) Code() stations.Code { return stations.IlhaDosPombosArtificial }

func (r *IlhaDosPombosArtificial) Calculate() series.Series {
	v := series.Clone(r.ilhaDosPombos)
	floats.Sub(v, r.pumping)
	floats.Sub(v, r.santana)
	floats.Add(v, r.santanaSpill)
	return series.Series{Code: r.Code(), Values: v}
}

// NiloPecanhaArtificial clamps the Vigário artificial flow at the Nilo
// Peçanha turbine capacity of 144.
type NiloPecanhaArtificial struct {
	vigario []float64
}

func NewNiloPecanhaArtificial(f *series.Frame, vigario series.Series) (*NiloPecanhaArtificial, error) {
	vg, err := dependency(f, vigario, stations.Vigario)
	if err != nil {
		return nil, err
	}
	return &NiloPecanhaArtificial{vigario: vg}, nil
}

func (r *NiloPecanhaArtificial) Code() stations.Code { return stations.NiloPecanhaArtificial }

func (r *NiloPecanhaArtificial) Calculate() series.Series {
	const limit = 144
	v := make([]float64, len(r.vigario))
	for i, flow := range r.vigario {
		v[i] = math.Min(flow, limit)
	}
	return series.Series{Code: r.Code(), Values: v}
}

// LajesArtificial adds the non-spilled share of Tocos to the Lajes
// flow: lajes + min(tocos, 25), evaluated per time step.
type LajesArtificial struct {
	tocos, lajes []float64
}

func NewLajesArtificial(f *series.Frame) (*LajesArtificial, error) {
	tc, err := column(f, stations.Tocos)
	if err != nil {
		return nil, err
	}
	lj, err := column(f, stations.Lajes)
	if err != nil {
		return nil, err
	}
	return &LajesArtificial{tocos: tc, lajes: lj}, nil
}

func (r *LajesArtificial) Code() stations.Code { return stations.LajesArtificial }

func (r *LajesArtificial) Calculate() series.Series {
	const limit = 25
	v := make([]float64, len(r.lajes))
	for i := range v {
		v[i] = r.lajes[i] + math.Min(r.tocos[i], limit)
	}
	return series.Series{Code: r.Code(), Values: v}
}

// FontesArtificial branches on the Lajes artificial flow: below 17 the
// Fontes flow is the Lajes artificial flow itself, otherwise it is 17
// plus whatever Vigário passes beyond Nilo Peçanha, capped at 34.
type FontesArtificial struct {
	lajesArtificial, vigario, niloPecanha []float64
}

func NewFontesArtificial(f *series.Frame, lajesArtificial, vigario, niloPecanha series.Series) (*FontesArtificial, error) {
	la, err := dependency(f, lajesArtificial, stations.LajesArtificial)
	if err != nil {
		return nil, err
	}
	vg, err := dependency(f, vigario, stations.Vigario)
	if err != nil {
		return nil, err
	}
	np, err := dependency(f, niloPecanha, stations.NiloPecanhaArtificial)
	if err != nil {
		return nil, err
	}
	return &FontesArtificial{lajesArtificial: la, vigario: vg, niloPecanha: np}, nil
}

func (r *FontesArtificial) Code() stations.Code { return stations.FontesArtificial }

func (r *FontesArtificial) Calculate() series.Series {
	const limit = 17
	v := make([]float64, len(r.lajesArtificial))
	for i := range v {
		if r.lajesArtificial[i] < limit {
			v[i] = r.lajesArtificial[i]
		} else {
			v[i] = limit + math.Min(r.vigario[i]-r.niloPecanha[i], 34)
		}
	}
	return series.Series{Code: r.Code(), Values: v}
}

// PereiraPassosArtificial sums the Fontes and Nilo Peçanha artificial
// flows.
type PereiraPassosArtificial struct {
	fontes, niloPecanha []float64
}

func NewPereiraPassosArtificial(f *series.Frame, fontes, niloPecanha series.Series) (*PereiraPassosArtificial, error) {
	fa, err := dependency(f, fontes, stations.FontesArtificial)
	if err != nil {
		return nil, err
	}
	np, err := dependency(f, niloPecanha, stations.NiloPecanhaArtificial)
	if err != nil {
		return nil, err
	}
	return &PereiraPassosArtificial{fontes: fa, niloPecanha: np}, nil
}

func (r *PereiraPassosArtificial) Code() stations.Code { return stations.PereiraPassosArtificial }

func (r *PereiraPassosArtificial) Calculate() series.Series {
	v := series.Clone(r.fontes)
	floats.Add(v, r.niloPecanha)
	return series.Series{Code: r.Code(), Values: v}
}
