package rules

import (
	"fmt"

	"github.com/hydrosphere/enaflow/series"
)

// collector runs rules in order, latches the first construction error
// and hands each result to downstream rules that depend on it. Every
// dependency is computed exactly once per basin pass.
type collector struct {
	f    *series.Frame
	outs []series.Series
	err  error
}

// add evaluates a freshly constructed rule and records its output. On a
// latched error it becomes a no-op so the composer can keep its wiring
// linear.
func (c *collector) add(r Rule, err error) series.Series {
	if c.err != nil {
		return series.Series{}
	}
	if err != nil {
		c.err = err
		return series.Series{}
	}
	s := r.Calculate()
	c.outs = append(c.outs, s)
	return s
}

// frame combines the collected outputs column-wise on the shared time
// axis. Duplicate output codes within a basin are a contract violation.
func (c *collector) frame(basin string) (*series.Frame, error) {
	if c.err != nil {
		return nil, fmt.Errorf("%s: %w", basin, c.err)
	}
	out, err := series.NewFrame(c.f.Times())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", basin, err)
	}
	for _, s := range c.outs {
		if err := out.AddSeries(s); err != nil {
			return nil, fmt.Errorf("%s: %w", basin, err)
		}
	}
	return out, nil
}

// AltoTiete derives the Alto Tietê basin series: the Billings/Pedras
// group and the pumping-corrected Tietê cascade down to Itaipu.
func AltoTiete(f *series.Frame) (*series.Frame, error) {
	c := collector{f: f}

	c.add(NewTraicao(f))
	c.add(NewPedreira(f))
	billingsPedras := c.add(NewBillingsPedras(f))
	pedras := c.add(NewPedras(f, billingsPedras))
	c.add(NewEdgardSouza(f))
	c.add(NewHenryBorden(f, pedras))
	c.add(NewBillingsArtificial(f))
	c.add(NewBarraBonitaArtificial(f))
	c.add(NewBaririArtificial(f))
	c.add(NewIbitingaArtificial(f))
	c.add(NewPromissaoArtificial(f))
	c.add(NewNovaAvanhandavaArtificial(f))
	c.add(NewTresIrmaosArtificial(f))
	c.add(NewIlhaSolteiraEquivalent(f))
	c.add(NewJupiaArtificial(f))
	c.add(NewPortoPrimaveraArtificial(f))
	c.add(NewItaipuArtificial(f))

	return c.frame("alto tietê")
}

// ParaibaDoSul derives the Paraíba do Sul basin series. The chain
// around Santana feeds most of the basin, so its intermediate results
// are threaded through explicitly.
func ParaibaDoSul(f *series.Frame) (*series.Frame, error) {
	c := collector{f: f}

	pumping := c.add(NewSantaCeciliaPumping(f, DefaultSantaCeciliaConfig()))
	tocosSpill := c.add(NewTocosSpill(f))
	santana := c.add(NewSantanaNatural(f))
	santanaArtificial := c.add(NewSantanaArtificial(f, santana, tocosSpill, pumping))
	vigario := c.add(NewVigarioArtificial(f, santanaArtificial))
	santanaSpill := c.add(NewSantanaSpill(f, santanaArtificial, vigario))
	antaArtificial := c.add(NewAntaArtificial(f, pumping, santana, santanaSpill))
	c.add(NewSimplicioArtificial(f, antaArtificial, DefaultSimplicioConfig()))
	c.add(NewIlhaDosPombosArtificial(f, pumping, santana, santanaSpill))
	niloPecanha := c.add(NewNiloPecanhaArtificial(f, vigario))
	lajesArtificial := c.add(NewLajesArtificial(f))
	fontes := c.add(NewFontesArtificial(f, lajesArtificial, vigario, niloPecanha))
	c.add(NewPereiraPassosArtificial(f, fontes, niloPecanha))

	return c.frame("paraíba do sul")
}

// SaoFrancisco derives the São Francisco basin series.
func SaoFrancisco(f *series.Frame) (*series.Frame, error) {
	c := collector{f: f}
	c.add(NewPauloAfonso(f))
	c.add(NewComplexo(f))
	return c.frame("são francisco")
}

// Iguacu derives the Iguaçu basin series.
func Iguacu(f *series.Frame) (*series.Frame, error) {
	c := collector{f: f}
	c.add(NewJordaoArtificial(f))
	c.add(NewSegredoArtificial(f))
	return c.frame("iguaçu")
}

// Grande derives the Grande basin series.
func Grande(f *series.Frame) (*series.Frame, error) {
	c := collector{f: f}
	c.add(NewItutinga(f))
	return c.frame("grande")
}

// Paraguai derives the Paraguai basin series.
func Paraguai(f *series.Frame) (*series.Frame, error) {
	c := collector{f: f}
	c.add(NewItiquiraII(f))
	return c.frame("paraguai")
}

// Xingu derives the Xingu basin series from the measured flows and the
// Belo Monte hydrograph.
func Xingu(f *series.Frame, h Hydrograph) (*series.Frame, error) {
	c := collector{f: f}
	beloMonte := c.add(NewBeloMonteArtificial(f, h))
	c.add(NewPimentalArtificial(f, beloMonte))
	return c.frame("xingu")
}

var (
	_ Rule = (*Traicao)(nil)
	_ Rule = (*Pedreira)(nil)
	_ Rule = (*BillingsPedras)(nil)
	_ Rule = (*Pedras)(nil)
	_ Rule = (*EdgardSouza)(nil)
	_ Rule = (*HenryBorden)(nil)
	_ Rule = (*BillingsArtificial)(nil)
	_ Rule = (*BarraBonitaArtificial)(nil)
	_ Rule = (*IlhaSolteiraEquivalent)(nil)
	_ Rule = (*SantaCeciliaPumping)(nil)
	_ Rule = (*TocosSpill)(nil)
	_ Rule = (*SantanaNatural)(nil)
	_ Rule = (*SantanaArtificial)(nil)
	_ Rule = (*VigarioArtificial)(nil)
	_ Rule = (*SantanaSpill)(nil)
	_ Rule = (*AntaArtificial)(nil)
	_ Rule = (*SimplicioArtificial)(nil)
	_ Rule = (*IlhaDosPombosArtificial)(nil)
	_ Rule = (*NiloPecanhaArtificial)(nil)
	_ Rule = (*LajesArtificial)(nil)
	_ Rule = (*FontesArtificial)(nil)
	_ Rule = (*PereiraPassosArtificial)(nil)
	_ Rule = (*PauloAfonso)(nil)
	_ Rule = (*Complexo)(nil)
	_ Rule = (*JordaoArtificial)(nil)
	_ Rule = (*SegredoArtificial)(nil)
	_ Rule = (*Itutinga)(nil)
	_ Rule = (*ItiquiraII)(nil)
	_ Rule = (*BeloMonteArtificial)(nil)
	_ Rule = (*PimentalArtificial)(nil)
)
