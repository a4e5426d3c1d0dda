package stats

import (
	"errors"
	"strings"
	"testing"

	"power-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	input := "Variorum power statistics\n" +
		"samples: 1200\n" +
		"mean_power_watts : 215.5\n" +
		"host: node-01\n" +
		"no separator here\n" +
		"interval_ms: 20:00\n" +
		"\n" +
		"total_energy_joules: 1.5e4\n"

	record, warnings, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"samples", "mean_power_watts", "total_energy_joules"}, record.Keys)
	assert.Equal(t, 1200.0, record.Values["samples"])
	assert.Equal(t, 215.5, record.Values["mean_power_watts"])
	assert.Equal(t, 15000.0, record.Values["total_energy_joules"])

	require.Len(t, warnings, 2)
	var unparseable *UnparseableValueError
	require.True(t, errors.As(warnings[0], &unparseable))
	assert.Equal(t, "host", unparseable.Key)
	assert.Equal(t, 4, unparseable.Line)
	assert.Contains(t, warnings[1].Error(), `value "20:00" of "interval_ms"`)
}

func TestParse_TitleOnly(t *testing.T) {
	t.Parallel()

	record, warnings, err := Parse(strings.NewReader("samples: 5\n"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 0, record.Len(), "the first line is a title even when it looks like a stat")
}

func TestMean(t *testing.T) {
	t.Parallel()

	a, _, err := Parse(strings.NewReader("run a\nsamples: 100\nmean_power_watts: 200\n"))
	require.NoError(t, err)
	b, _, err := Parse(strings.NewReader("run b\nmean_power_watts: 300\nsamples: 300\npeak_power_watts: 410\n"))
	require.NoError(t, err)

	assert.Equal(t, []models.Stat{
		{Name: "samples", Value: 200},
		{Name: "mean_power_watts", Value: 250},
		{Name: "peak_power_watts", Value: 410},
	}, Mean([]*Record{a, b}))
}

func TestMean_NoRecords(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Mean(nil))
}
