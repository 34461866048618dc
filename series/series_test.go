package series

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrosphere/enaflow/stations"
)

func days(n int) []time.Time {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestNewFrame_RejectsNonIncreasingAxis(t *testing.T) {
	ts := days(3)
	ts[2] = ts[1] // duplicate timestamp

	_, err := NewFrame(ts)
	assert.ErrorContains(t, err, "strictly increasing")
}

func TestAddColumn_LengthAndDuplicateChecks(t *testing.T) {
	f, err := NewFrame(days(2))
	require.NoError(t, err)

	require.NoError(t, f.AddColumn(stations.Billings, []float64{1, 2}))

	assert.ErrorContains(t, f.AddColumn(stations.Billings, []float64{3, 4}), "duplicate")
	assert.ErrorContains(t, f.AddColumn(stations.Tocos, []float64{1}), "time axis")
}

func TestFromRecords_ParsesAndCoerces(t *testing.T) {
	header := []string{"date", "117", " 118 "}
	rows := [][]string{
		{"2024-01-01", "10.5", ""},
		{"2024-01-02", "11", "20"},
	}

	f, err := FromRecords(header, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []stations.Code{117, 118}, f.Codes())

	guarapiranga, ok := f.Column(stations.Guarapiranga)
	require.True(t, ok)
	assert.Equal(t, []float64{10.5, 11}, guarapiranga)

	billings, ok := f.Column(stations.Billings)
	require.True(t, ok)
	assert.True(t, math.IsNaN(billings[0]), "blank cell should be missing")
	assert.Equal(t, 20.0, billings[1])
}

func TestFromRecords_RejectsBadInput(t *testing.T) {
	_, err := FromRecords([]string{"date", "abc"}, nil)
	assert.ErrorContains(t, err, "not a numeric station code")

	_, err = FromRecords([]string{"date", "117"}, [][]string{{"01/02/2024", "1"}})
	assert.ErrorContains(t, err, "invalid timestamp")

	_, err = FromRecords([]string{"date", "117"}, [][]string{{"2024-01-01", "x"}})
	assert.ErrorContains(t, err, "invalid value")

	_, err = FromRecords([]string{"date", "117"}, [][]string{
		{"2024-01-02", "1"},
		{"2024-01-01", "2"},
	})
	assert.ErrorContains(t, err, "strictly increasing")
}

func TestClone_DoesNotShareBacking(t *testing.T) {
	orig := []float64{1, 2, 3}
	c := Clone(orig)
	c[0] = 99
	assert.Equal(t, 1.0, orig[0])
}
