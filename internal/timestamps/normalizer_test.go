package timestamps

import (
	"math"
	"testing"

	"power-analytics/internal/frames"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_PreferredFieldPresent(t *testing.T) {
	t.Parallel()

	f := frames.MustNew(
		frames.NewIntColumn("timestamp_system_epoch_ms", []int64{1000, 1020}),
		frames.NewIntColumn(FieldNanoseconds, []int64{1, 2}),
		frames.NewFloatColumn("power_watts", []float64{10, 20}),
	)

	out, field, err := Normalize(f, "timestamp_system_epoch_ms")
	require.NoError(t, err)
	assert.Equal(t, "timestamp_system_epoch_ms", field)
	assert.Same(t, f, out, "no column is derived when the preferred field exists")
}

func TestNormalize_NanosecondFallback(t *testing.T) {
	t.Parallel()

	f := frames.MustNew(
		frames.NewIntColumn(FieldNanoseconds, []int64{1_500_000, 3, 1718000000123456789}),
		frames.NewFloatColumn("power_watts", []float64{10, 20, 30}),
	)

	out, field, err := Normalize(f, "timestamp_system_epoch_ms")
	require.NoError(t, err)
	assert.Equal(t, FieldMilliseconds, field)

	ms, ok := out.Column(FieldMilliseconds)
	require.True(t, ok)
	assert.Equal(t, 1.5, ms.Float(0))
	assert.Equal(t, 3/1e6, ms.Float(1))
	assert.Equal(t, float64(1718000000123456789)/1e6, ms.Float(2))
	assert.False(t, f.Has(FieldMilliseconds), "input frame is not modified")
	assert.Equal(t, []string{FieldNanoseconds, "power_watts", FieldMilliseconds}, out.ColumnNames())
}

func TestNormalize_DefaultPreferredIsMilliseconds(t *testing.T) {
	t.Parallel()

	f := frames.MustNew(frames.NewFloatColumn(FieldMilliseconds, []float64{1}))
	_, field, err := Normalize(f, "")
	require.NoError(t, err)
	assert.Equal(t, FieldMilliseconds, field)
}

func TestNormalize_NoUsableColumn(t *testing.T) {
	t.Parallel()

	f := frames.MustNew(
		frames.NewTextColumn("time_relative_ms", []string{"soon"}),
		frames.NewFloatColumn("power_watts", []float64{10}),
	)

	out, field, err := Normalize(f, "time_relative_ms")
	assert.Nil(t, out)
	assert.Empty(t, field)
	require.ErrorIs(t, err, ErrNoTimestamp)
	assert.Contains(t, err.Error(), "tried [time_relative_ms, timestamp_nanoseconds]")
	assert.Contains(t, err.Error(), "available columns [time_relative_ms, power_watts]")
}

func TestResolve_CustomChainOrder(t *testing.T) {
	t.Parallel()

	f := frames.MustNew(
		frames.NewFloatColumn("b", []float64{math.NaN()}),
		frames.NewFloatColumn("a", []float64{1}),
	)

	_, field, err := Resolve(f, []Strategy{Preferred("missing"), Preferred("a"), Preferred("b")})
	require.NoError(t, err)
	assert.Equal(t, "a", field)
}
