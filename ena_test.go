package enaflow

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrosphere/enaflow/rules"
	"github.com/hydrosphere/enaflow/series"
	"github.com/hydrosphere/enaflow/stations"
)

// measuredDataset builds a frame with every measured input the seven
// basins need, constant over n days.
func measuredDataset(t *testing.T, n int) *series.Frame {
	t.Helper()

	inputs := map[stations.Code]float64{
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
		stations.SantaCecilia:               100,
		stations.Anta:                       500,
		stations.IlhaDosPombos:              600,
		stations.Tocos:                      30,
		stations.Lajes:                      40,
		stations.Moxoto:                     70,
		stations.Jordao:                     200,
		stations.Segredo:                    300,
		stations.Camargos:                   80,
		stations.ItiquiraI:                  90,
		stations.Pimental:                   2500,
	}

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, n)
	for i := range times {
		times[i] = start.AddDate(0, 0, i)
	}
	f, err := series.NewFrame(times)
	require.NoError(t, err)
	for code, v := range inputs {
		values := make([]float64, n)
		for i := range values {
			values[i] = v
		}
		require.NoError(t, f.AddColumn(code, values))
	}
	return f
}

func flatHydrograph(flow float64) rules.Hydrograph {
	h := make(rules.Hydrograph, 12)
	for m := time.January; m <= time.December; m++ {
		h[m] = flow
	}
	return h
}

func testCalculator(t *testing.T, flows *series.Frame) *Calculator {
	t.Helper()

	productivity := Productivity{
		stations.Traicao:      0.5,
		stations.Guarapiranga: 2,
		stations.Billings:     3,
		stations.TocosSpill:   1,
	}
	groupings, err := NewGroupings(GroupingTable{
		Dimension: "subsystem",
		Labels: map[stations.Code]string{
			stations.Traicao:      "SE/CO",
			stations.Guarapiranga: "SE/CO",
			stations.Billings:     "S",
		},
	})
	require.NoError(t, err)

	c, err := NewCalculator(flows, productivity, groupings, flatHydrograph(1000))
	require.NoError(t, err)
	return c
}

func TestAugmentedFlows_MergesMeasuredAndDerived(t *testing.T) {
	flows := measuredDataset(t, 3)
	c := testCalculator(t, flows)

	augmented, err := c.AugmentedFlows()
	require.NoError(t, err)

	// 24 measured columns plus the 38 derived series.
	assert.Len(t, augmented.Codes(), 24+38)

	// Measured columns survive untouched.
	billings, ok := augmented.Column(stations.Billings)
	require.True(t, ok)
	assert.Equal(t, []float64{20, 20, 20}, billings)

	// Guarapiranga=10, Billings=20 gives Traição=30.
	traicao, ok := augmented.Column(stations.Traicao)
	require.True(t, ok)
	assert.Equal(t, []float64{30, 30, 30}, traicao)

	// Tocos=30 gives a spill of 5.
	tocosSpill, ok := augmented.Column(stations.TocosSpill)
	require.True(t, ok)
	assert.Equal(t, []float64{5, 5, 5}, tocosSpill)
}

func TestAugmentedFlows_Deterministic(t *testing.T) {
	flows := measuredDataset(t, 4)
	c := testCalculator(t, flows)

	first, err := c.AugmentedFlows()
	require.NoError(t, err)
	second, err := c.AugmentedFlows()
	require.NoError(t, err)

	require.Equal(t, first.Codes(), second.Codes())
	for _, code := range first.Codes() {
		a, _ := first.Column(code)
		b, _ := second.Column(code)
		assert.Equal(t, a, b, "station %d", code)
	}
}

func TestAugmentedFlows_MissingStationFails(t *testing.T) {
	times := []time.Time{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	flows, err := series.NewFrame(times)
	require.NoError(t, err)
	require.NoError(t, flows.AddColumn(stations.Guarapiranga, []float64{10}))

	c := testCalculator(t, flows)

	_, err = c.AugmentedFlows()
	require.ErrorIs(t, err, rules.ErrMissingStation)
}

func TestENA_ScalesByProductivity(t *testing.T) {
	flows := measuredDataset(t, 2)
	c := testCalculator(t, flows)

	ena, err := c.ENA(flows)
	require.NoError(t, err)

	guarapiranga, ok := ena.Column(stations.Guarapiranga)
	require.True(t, ok)
	assert.Equal(t, []float64{20, 20}, guarapiranga)

	billings, ok := ena.Column(stations.Billings)
	require.True(t, ok)
	assert.Equal(t, []float64{60, 60}, billings)

	// No coefficient: missing ENA, not zero and not an error.
	tocos, ok := ena.Column(stations.Tocos)
	require.True(t, ok)
	assert.True(t, math.IsNaN(tocos[0]))
	assert.True(t, math.IsNaN(tocos[1]))
}

func TestGroup_SumsPerLabelAndDropsUngrouped(t *testing.T) {
	flows := measuredDataset(t, 2)
	c := testCalculator(t, flows)

	augmented, err := c.AugmentedFlows()
	require.NoError(t, err)
	ena, err := c.ENA(augmented)
	require.NoError(t, err)

	grouped, err := c.Group(ena, "subsystem")
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "SE/CO"}, grouped.Groups)

	// Traição ENA 15 + Guarapiranga ENA 20.
	assert.Equal(t, []float64{35, 35}, grouped.Values["SE/CO"])
	// Billings ENA alone.
	assert.Equal(t, []float64{60, 60}, grouped.Values["S"])

	// Conservation: the grouped total equals the sum of every station
	// ENA that has a defined group.
	var total float64
	for _, label := range grouped.Groups {
		total += grouped.Values[label][0]
	}
	var direct float64
	for _, code := range []stations.Code{stations.Traicao, stations.Guarapiranga, stations.Billings} {
		col, _ := ena.Column(code)
		direct += col[0]
	}
	assert.InDelta(t, direct, total, 1e-9)
}

func TestGroup_UnknownDimensionFails(t *testing.T) {
	flows := measuredDataset(t, 1)
	c := testCalculator(t, flows)

	ena, err := c.ENA(flows)
	require.NoError(t, err)

	_, err = c.Group(ena, "ree")
	require.ErrorIs(t, err, ErrUnknownDimension)
}

func TestNewCalculator_ValidatesEagerly(t *testing.T) {
	flows := measuredDataset(t, 1)

	_, err := NewCalculator(nil, Productivity{1: 1}, Groupings{}, flatHydrograph(1))
	assert.ErrorContains(t, err, "empty")

	_, err = NewCalculator(flows, Productivity{}, Groupings{}, flatHydrograph(1))
	assert.ErrorContains(t, err, "productivity")

	incomplete := flatHydrograph(1)
	delete(incomplete, time.May)
	_, err = NewCalculator(flows, Productivity{1: 1}, Groupings{}, incomplete)
	assert.ErrorContains(t, err, "missing month")
}
