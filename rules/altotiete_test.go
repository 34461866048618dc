package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// dailyAxis returns n consecutive days starting 2024-01-01.
func dailyAxis(n int) []time.Time {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// frameWith builds a test frame with constant-valued columns.
func frameWith(t *testing.T, n int, cols map[stations.Code]float64) *series.Frame {
	t.Helper()
	f, err := series.NewFrame(dailyAxis(n))
	require.NoError(t, err)
	for code, v := range cols {
		values := make([]float64, n)
		for i := range values {
			values[i] = v
		}
		require.NoError(t, f.AddColumn(code, values))
	}
	return f
}

func TestTraicao_SumsReservoirs(t *testing.T) {
	f := frameWith(t, 2, map[stations.Code]float64{
		stations.Guarapiranga: 10,
		stations.Billings:     20,
	})

	r, err := NewTraicao(f)
	require.NoError(t, err)

	out := r.Calculate()
	assert.Equal(t, stations.Traicao, out.Code)
	assert.Equal(t, []float64{30, 30}, out.Values)
}

func TestTraicao_MissingInputFailsLoudly(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{stations.Guarapiranga: 10})

	_, err := NewTraicao(f)
	require.ErrorIs(t, err, ErrMissingStation)
	assert.ErrorContains(t, err, "118")
}

func TestBillingsPedras_AffineCalibration(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{stations.Billings: 20})

	r, err := NewBillingsPedras(f)
	require.NoError(t, err)

	out := r.Calculate()
	assert.InDelta(t, (20-0.185)/0.8103, out.Values[0], 1e-12)
}

func TestPedras_ChainsFromBillingsPedras(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{stations.Billings: 20})

	bp, err := NewBillingsPedras(f)
	require.NoError(t, err)

	r, err := NewPedras(f, bp.Calculate())
	require.NoError(t, err)

	out := r.Calculate()
	assert.InDelta(t, (20-0.185)/0.8103-20, out.Values[0], 1e-12)
}

func TestPedras_RejectsWrongDependency(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{stations.Billings: 20})

	wrong := series.Series{Code: stations.Traicao, Values: []float64{1}}
	_, err := NewPedras(f, wrong)
	assert.ErrorContains(t, err, "dependency mismatch")
}

func TestCascade_CorrectionTermIsSharedExactly(t *testing.T) {
	// guarapiranga=10, billings=20, esouza=50 gives correction
	// 0.1*(50-10-20) = 2 in every rule that uses it.
	f := frameWith(t, 1, map[stations.Code]float64{
		stations.Guarapiranga:               10,
		stations.Billings:                   20,
		stations.EdgardSouzaWithTributaries: 50,
		stations.BarraBonita:                100,
		stations.Bariri:                     200,
		stations.Itaipu:                     300,
	})

	billingsArt, err := NewBillingsArtificial(f)
	require.NoError(t, err)
	assert.InDelta(t, 2+10+20, billingsArt.Calculate().Values[0], 1e-12)

	barraBonita, err := NewBarraBonitaArtificial(f)
	require.NoError(t, err)
	assert.InDelta(t, 100-2-10-20, barraBonita.Calculate().Values[0], 1e-12)

	bariri, err := NewBaririArtificial(f)
	require.NoError(t, err)
	assert.InDelta(t, 200-2-10-20, bariri.Calculate().Values[0], 1e-12)

	itaipu, err := NewItaipuArtificial(f)
	require.NoError(t, err)
	assert.InDelta(t, 300-2-10-20, itaipu.Calculate().Values[0], 1e-12)
}

func TestIlhaSolteiraEquivalent_SumsBothStations(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{
		stations.Guarapiranga:               10,
		stations.Billings:                   20,
		stations.EdgardSouzaWithTributaries: 50,
		stations.TresIrmaos:                 40,
		stations.IlhaSolteira:               60,
	})

	r, err := NewIlhaSolteiraEquivalent(f)
	require.NoError(t, err)

	out := r.Calculate()
	assert.Equal(t, stations.IlhaSolteiraEquivalent, out.Code)
	assert.InDelta(t, (40+60)-2-10-20, out.Values[0], 1e-12)
}

func TestHenryBorden_AddsPedrasAndCorrection(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{
		stations.Guarapiranga:               10,
		stations.Billings:                   20,
		stations.EdgardSouzaWithTributaries: 50,
	})

	bp, err := NewBillingsPedras(f)
	require.NoError(t, err)
	pedrasRule, err := NewPedras(f, bp.Calculate())
	require.NoError(t, err)
	pedras := pedrasRule.Calculate()

	r, err := NewHenryBorden(f, pedras)
	require.NoError(t, err)

	out := r.Calculate()
	assert.InDelta(t, pedras.Values[0]+2+10+20, out.Values[0], 1e-12)
}

func TestEdgardSouza_RemovesTributaries(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{
		stations.Guarapiranga:               10,
		stations.Billings:                   20,
		stations.EdgardSouzaWithTributaries: 50,
	})

	r, err := NewEdgardSouza(f)
	require.NoError(t, err)

	out := r.Calculate()
	assert.Equal(t, stations.EdgardSouzaWithoutTributaries, out.Code)
	assert.Equal(t, 20.0, out.Values[0])
}

func TestPedreira_PassesBillingsThrough(t *testing.T) {
	f := frameWith(t, 1, map[stations.Code]float64{stations.Billings: 20})

	r, err := NewPedreira(f)
	require.NoError(t, err)

	out := r.Calculate()
	assert.Equal(t, stations.Pedreira, out.Code)
	assert.Equal(t, 20.0, out.Values[0])
}
