package comparison

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestSummarize(t *testing.T) {
	rows := []Row{
		{Property: "HasK3", N: 10, Ratio: null.FloatFrom(1)},
		{Property: "HasK3", N: 20, Ratio: null.FloatFrom(2)},
		{Property: "HasK3", N: 40, Ratio: null.FloatFrom(6)},
		{Property: "HasK3", N: 80},
		{Property: "IsConnected", N: 10, Ratio: null.FloatFrom(1.5)},
		{Property: "HasK4", N: 10},
	}

	summaries := Summarize(rows)
	require.Len(t, summaries, 3)

	k3 := summaries[0]
	assert.Equal(t, "HasK3", k3.Property)
	assert.Equal(t, 4, k3.Rows)
	assert.Equal(t, 3, k3.Defined)
	assert.InDelta(t, 3.0, k3.MeanRatio.Float64, 1e-12)
	assert.InDelta(t, 2.6457513110645907, k3.SDRatio.Float64, 1e-12)
	assert.InDelta(t, 2.0, k3.MedianRatio.Float64, 1e-12)

	single := summaries[1]
	assert.Equal(t, "IsConnected", single.Property)
	assert.True(t, single.MeanRatio.Valid)
	assert.False(t, single.SDRatio.Valid)
	assert.InDelta(t, 1.5, single.MedianRatio.Float64, 1e-12)

	none := summaries[2]
	assert.Equal(t, "HasK4", none.Property)
	assert.Zero(t, none.Defined)
	assert.False(t, none.MeanRatio.Valid)
	assert.False(t, none.MedianRatio.Valid)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, Summarize(sampleRows())))

	out := buf.String()
	assert.Contains(t, out, "Ratio Summary")

	var fields [][]string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "HasK") {
			fields = append(fields, strings.Fields(line))
		}
	}
	require.Len(t, fields, 2)
	assert.Equal(t, []string{"HasK3", "1", "1", "1.000", Undefined, "1.000"}, fields[0])
	assert.Equal(t, []string{"HasK4", "1", "0", Undefined, Undefined, Undefined}, fields[1])
}

func TestWriteRatioHistogram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRatioHistogram(&buf, []Row{{Property: "HasK4"}}, 5))
	assert.Zero(t, buf.Len())

	rows := []Row{
		{Ratio: null.FloatFrom(0.5)},
		{Ratio: null.FloatFrom(1.0)},
		{Ratio: null.FloatFrom(1.1)},
		{Ratio: null.FloatFrom(2.0)},
	}
	require.NoError(t, WriteRatioHistogram(&buf, rows, 3))
	assert.Equal(t, 3, strings.Count(strings.TrimRight(buf.String(), "\n"), "\n")+1)
}
