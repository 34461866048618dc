package rules

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// tieteCorrection is the Edgard de Souza correction term shared by
// every rule along the Tietê cascade. All of them must compute it
// identically: 0.1 * (EdgardSouza - Guarapiranga - Billings).
func tieteCorrection(esouza, guarapiranga, billings []float64) []float64 {
	v := series.Clone(esouza)
	floats.Sub(v, guarapiranga)
	floats.Sub(v, billings)
	floats.Scale(0.1, v)
	return v
}

// Traicao derives the Traição flow as Guarapiranga + Billings.
type Traicao struct {
	guarapiranga, billings []float64
}

func NewTraicao(f *series.Frame) (*Traicao, error) {
	g, err := column(f, stations.Guarapiranga)
	if err != nil {
		return nil, err
	}
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	return &Traicao{guarapiranga: g, billings: b}, nil
}

func (r *Traicao) Code() stations.Code { return stations.Traicao }

func (r *Traicao) Calculate() series.Series {
	v := series.Clone(r.guarapiranga)
	floats.Add(v, r.billings)
	return series.Series{Code: r.Code(), Values: v}
}

// Pedreira passes the Billings flow through under the Pedreira code.
type Pedreira struct {
	billings []float64
}

func NewPedreira(f *series.Frame) (*Pedreira, error) {
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	return &Pedreira{billings: b}, nil
}

func (r *Pedreira) Code() stations.Code { return stations.Pedreira }

func (r *Pedreira) Calculate() series.Series {
	return series.Series{Code: r.Code(), Values: series.Clone(r.billings)}
}

// BillingsPedras derives the combined Billings + Pedras flow with the
// affine correction (billings - 0.185) / 0.8103 from a prior
// calibration of the two gauges.
type BillingsPedras struct {
	billings []float64
}

func NewBillingsPedras(f *series.Frame) (*BillingsPedras, error) {
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	return &BillingsPedras{billings: b}, nil
}

func (r *BillingsPedras) Code() stations.Code { return stations.BillingsPedras }

func (r *BillingsPedras) Calculate() series.Series {
	v := series.Clone(r.billings)
	floats.AddConst(-0.185, v)
	floats.Scale(1/0.8103, v)
	return series.Series{Code: r.Code(), Values: v}
}

// Pedras isolates the Pedras contribution by removing Billings from
// the combined Billings + Pedras series.
type Pedras struct {
	billings, billingsPedras []float64
}

func NewPedras(f *series.Frame, billingsPedras series.Series) (*Pedras, error) {
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	bp, err := dependency(f, billingsPedras, stations.BillingsPedras)
	if err != nil {
		return nil, err
	}
	return &Pedras{billings: b, billingsPedras: bp}, nil
}

func (r *Pedras) Code() stations.Code { return stations.Pedras }

func (r *Pedras) Calculate() series.Series {
	v := series.Clone(r.billingsPedras)
	floats.Sub(v, r.billings)
	return series.Series{Code: r.Code(), Values: v}
}

// EdgardSouza derives the Edgard de Souza flow without tributaries by
// removing the Guarapiranga and Billings contributions.
type EdgardSouza struct {
	esouza, guarapiranga, billings []float64
}

func NewEdgardSouza(f *series.Frame) (*EdgardSouza, error) {
	es, err := column(f, stations.EdgardSouzaWithTributaries)
	if err != nil {
		return nil, err
	}
	g, err := column(f, stations.Guarapiranga)
	if err != nil {
		return nil, err
	}
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	return &EdgardSouza{esouza: es, guarapiranga: g, billings: b}, nil
}

func (r *EdgardSouza) Code() stations.Code { return stations.EdgardSouzaWithoutTributaries }

func (r *EdgardSouza) Calculate() series.Series {
	v := series.Clone(r.esouza)
	floats.Sub(v, r.guarapiranga)
	floats.Sub(v, r.billings)
	return series.Series{Code: r.Code(), Values: v}
}

// HenryBorden derives the Henry Borden flow from the Pedras result plus
// the cascade correction and the two reservoir series.
type HenryBorden struct {
	pedras, esouza, guarapiranga, billings []float64
}

func NewHenryBorden(f *series.Frame, pedras series.Series) (*HenryBorden, error) {
	p, err := dependency(f, pedras, stations.Pedras)
	if err != nil {
		return nil, err
	}
	es, err := column(f, stations.EdgardSouzaWithTributaries)
	if err != nil {
		return nil, err
	}
	g, err := column(f, stations.Guarapiranga)
	if err != nil {
		return nil, err
	}
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	return &HenryBorden{pedras: p, esouza: es, guarapiranga: g, billings: b}, nil
}

func (r *HenryBorden) Code() stations.Code { return stations.HenryBorden }

func (r *HenryBorden) Calculate() series.Series {
	v := series.Clone(r.pedras)
	floats.Add(v, tieteCorrection(r.esouza, r.guarapiranga, r.billings))
	floats.Add(v, r.guarapiranga)
	floats.Add(v, r.billings)
	return series.Series{Code: r.Code(), Values: v}
}

// BillingsArtificial derives the Billings artificial flow from the
// cascade correction and the two reservoir series.
type BillingsArtificial struct {
	esouza, guarapiranga, billings []float64
}

func NewBillingsArtificial(f *series.Frame) (*BillingsArtificial, error) {
	es, err := column(f, stations.EdgardSouzaWithTributaries)
	if err != nil {
		return nil, err
	}
	g, err := column(f, stations.Guarapiranga)
	if err != nil {
		return nil, err
	}
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	return &BillingsArtificial{esouza: es, guarapiranga: g, billings: b}, nil
}

func (r *BillingsArtificial) Code() stations.Code { return stations.BillingsArtificial }

func (r *BillingsArtificial) Calculate() series.Series {
	v := tieteCorrection(r.esouza, r.guarapiranga, r.billings)
	floats.Add(v, r.guarapiranga)
	floats.Add(v, r.billings)
	return series.Series{Code: r.Code(), Values: v}
}

// tieteCascade is the shared shape of the stations downstream of
// Edgard de Souza: own raw flow minus the cascade correction minus the
// Guarapiranga and Billings contributions.
type tieteCascade struct {
	out                          stations.Code
	base                         []float64
	esouza, guarapiranga, billings []float64
}

func newTieteCascade(f *series.Frame, out stations.Code, base []float64) (*tieteCascade, error) {
	es, err := column(f, stations.EdgardSouzaWithTributaries)
	if err != nil {
		return nil, err
	}
	g, err := column(f, stations.Guarapiranga)
	if err != nil {
		return nil, err
	}
	b, err := column(f, stations.Billings)
	if err != nil {
		return nil, err
	}
	return &tieteCascade{out: out, base: base, esouza: es, guarapiranga: g, billings: b}, nil
}

func (r *tieteCascade) Code() stations.Code { return r.out }

func (r *tieteCascade) Calculate() series.Series {
	v := series.Clone(r.base)
	floats.Sub(v, tieteCorrection(r.esouza, r.guarapiranga, r.billings))
	floats.Sub(v, r.guarapiranga)
	floats.Sub(v, r.billings)
	return series.Series{Code: r.out, Values: v}
}

// The cascade stations only differ in their raw input and output codes.

type BarraBonitaArtificial struct{ *tieteCascade }

func NewBarraBonitaArtificial(f *series.Frame) (*BarraBonitaArtificial, error) {
	base, err := column(f, stations.BarraBonita)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.BarraBonitaArtificial, base)
	if err != nil {
		return nil, err
	}
	return &BarraBonitaArtificial{c}, nil
}

type BaririArtificial struct{ *tieteCascade }

func NewBaririArtificial(f *series.Frame) (*BaririArtificial, error) {
	base, err := column(f, stations.Bariri)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.BaririArtificial, base)
	if err != nil {
		return nil, err
	}
	return &BaririArtificial{c}, nil
}

type IbitingaArtificial struct{ *tieteCascade }

func NewIbitingaArtificial(f *series.Frame) (*IbitingaArtificial, error) {
	base, err := column(f, stations.Ibitinga)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.IbitingaArtificial, base)
	if err != nil {
		return nil, err
	}
	return &IbitingaArtificial{c}, nil
}

type PromissaoArtificial struct{ *tieteCascade }

func NewPromissaoArtificial(f *series.Frame) (*PromissaoArtificial, error) {
	base, err := column(f, stations.Promissao)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.PromissaoArtificial, base)
	if err != nil {
		return nil, err
	}
	return &PromissaoArtificial{c}, nil
}

type NovaAvanhandavaArtificial struct{ *tieteCascade }

func NewNovaAvanhandavaArtificial(f *series.Frame) (*NovaAvanhandavaArtificial, error) {
	base, err := column(f, stations.NovaAvanhandava)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.NovaAvanhandavaArtificial, base)
	if err != nil {
		return nil, err
	}
	return &NovaAvanhandavaArtificial{c}, nil
}

type TresIrmaosArtificial struct{ *tieteCascade }

func NewTresIrmaosArtificial(f *series.Frame) (*TresIrmaosArtificial, error) {
	base, err := column(f, stations.TresIrmaos)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.TresIrmaosArtificial, base)
	if err != nil {
		return nil, err
	}
	return &TresIrmaosArtificial{c}, nil
}

// IlhaSolteiraEquivalent applies the cascade correction to the sum of
// the Três Irmãos and Ilha Solteira raw flows.
type IlhaSolteiraEquivalent struct{ *tieteCascade }

func NewIlhaSolteiraEquivalent(f *series.Frame) (*IlhaSolteiraEquivalent, error) {
	tresIrmaos, err := column(f, stations.TresIrmaos)
	if err != nil {
		return nil, err
	}
	ilhaSolteira, err := column(f, stations.IlhaSolteira)
	if err != nil {
		return nil, err
	}
	base := series.Clone(tresIrmaos)
	floats.Add(base, ilhaSolteira)

	c, err := newTieteCascade(f, stations.IlhaSolteiraEquivalent, base)
	if err != nil {
		return nil, err
	}
	return &IlhaSolteiraEquivalent{c}, nil
}

type JupiaArtificial struct{ *tieteCascade }

func NewJupiaArtificial(f *series.Frame) (*JupiaArtificial, error) {
	base, err := column(f, stations.Jupia)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.JupiaArtificial, base)
	if err != nil {
		return nil, err
	}
	return &JupiaArtificial{c}, nil
}

type PortoPrimaveraArtificial struct{ *tieteCascade }

func NewPortoPrimaveraArtificial(f *series.Frame) (*PortoPrimaveraArtificial, error) {
	base, err := column(f, stations.PortoPrimavera)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.PortoPrimaveraArtificial, base)
	if err != nil {
		return nil, err
	}
	return &PortoPrimaveraArtificial{c}, nil
}

type ItaipuArtificial struct{ *tieteCascade }

func NewItaipuArtificial(f *series.Frame) (*ItaipuArtificial, error) {
	base, err := column(f, stations.Itaipu)
	if err != nil {
		return nil, err
	}
	c, err := newTieteCascade(f, stations.ItaipuArtificial, base)
	if err != nil {
		return nil, err
	}
	return &ItaipuArtificial{c}, nil
}
