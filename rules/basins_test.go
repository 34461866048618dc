package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrosphere/enaflow/stations"
)

func altoTieteInputs() map[stations.Code]float64 {
	return map[stations.Code]float64{
		stations.Guarapiranga:               10,
		stations.Billings:                   20,
		stations.EdgardSouzaWithTributaries: 50,
		stations.BarraBonita:                100,
		stations.Bariri:                     110,
		stations.Ibitinga:                   120,
		stations.Promissao:                  130,
		stations.NovaAvanhandava:            140,
		stations.TresIrmaos:                 150,
		stations.IlhaSolteira:               160,
		stations.Jupia:                      170,
		stations.PortoPrimavera:             180,
		stations.Itaipu:                     190,
	}
}

func TestAltoTiete_ProducesAllOutputsOnce(t *testing.T) {
	f := frameWith(t, 3, altoTieteInputs())

	basin, err := AltoTiete(f)
	require.NoError(t, err)

	want := []stations.Code{
		stations.Traicao,
		stations.Pedreira,
		stations.BillingsPedras,
		stations.Pedras,
		stations.EdgardSouzaWithoutTributaries,
		stations.HenryBorden,
		stations.BillingsArtificial,
		stations.BarraBonitaArtificial,
		stations.BaririArtificial,
		stations.IbitingaArtificial,
		stations.PromissaoArtificial,
		stations.NovaAvanhandavaArtificial,
		stations.TresIrmaosArtificial,
		stations.IlhaSolteiraEquivalent,
		stations.JupiaArtificial,
		stations.PortoPrimaveraArtificial,
		stations.ItaipuArtificial,
	}
	assert.Equal(t, want, basin.Codes())
	assert.Equal(t, 3, basin.Len())
}

func TestAltoTiete_Deterministic(t *testing.T) {
	f := frameWith(t, 5, altoTieteInputs())

	first, err := AltoTiete(f)
	require.NoError(t, err)
	second, err := AltoTiete(f)
	require.NoError(t, err)

	require.Equal(t, first.Codes(), second.Codes())
	for _, code := range first.Codes() {
		a, _ := first.Column(code)
		b, _ := second.Column(code)
		assert.Equal(t, a, b, "station %d", code)
	}
}

func TestComposers_WrapBasinNameOnMissingInput(t *testing.T) {
	f := frameWith(t, 1, nil)

	_, err := AltoTiete(f)
	require.ErrorIs(t, err, ErrMissingStation)
	assert.ErrorContains(t, err, "alto tietê")

	_, err = ParaibaDoSul(f)
	assert.ErrorContains(t, err, "paraíba do sul")

	_, err = Grande(f)
	assert.ErrorContains(t, err, "grande")
}

func TestSmallBasins_PassThroughs(t *testing.T) {
	f := frameWith(t, 2, map[stations.Code]float64{
		stations.Moxoto:    70,
		stations.Camargos:  80,
		stations.ItiquiraI: 90,
	})

	saoFrancisco, err := SaoFrancisco(f)
	require.NoError(t, err)
	pauloAfonso, _ := saoFrancisco.Column(stations.PauloAfonso)
	complexo, _ := saoFrancisco.Column(stations.Complexo)
	assert.Equal(t, []float64{70, 70}, pauloAfonso)
	assert.Equal(t, []float64{70, 70}, complexo)

	grande, err := Grande(f)
	require.NoError(t, err)
	itutinga, _ := grande.Column(stations.Itutinga)
	assert.Equal(t, []float64{80, 80}, itutinga)

	paraguai, err := Paraguai(f)
	require.NoError(t, err)
	itiquiraII, _ := paraguai.Column(stations.ItiquiraII)
	assert.Equal(t, []float64{90, 90}, itiquiraII)
}

func TestIguacu_DiversionPair(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{
		stations.Jordao:  200,
		stations.Segredo: 300,
	})

	basin, err := Iguacu(f)
	require.NoError(t, err)

	// jordao-10 = 190 exceeds the 173.5 tunnel limit.
	jordao, _ := basin.Column(stations.JordaoArtificial)
	assert.InDelta(t, 200-173.5, jordao[0], 1e-12)

	segredo, _ := basin.Column(stations.SegredoArtificial)
	assert.InDelta(t, 300+173.5, segredo[0], 1e-12)
}
