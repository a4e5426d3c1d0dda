package frames

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn_InfersKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      []string
		wantKind Kind
	}{
		{name: "integers", raw: []string{"1718000000000000000", "-3"}, wantKind: KindInt},
		{name: "floats", raw: []string{"1.5", "2"}, wantKind: KindFloat},
		{name: "integers with gap become float", raw: []string{"1", ""}, wantKind: KindFloat},
		{name: "all empty", raw: []string{"", ""}, wantKind: KindFloat},
		{name: "no rows", raw: nil, wantKind: KindFloat},
		{name: "text", raw: []string{"1", "kernel_a"}, wantKind: KindText},
		{name: "scientific", raw: []string{"1e3", "2.5E-2"}, wantKind: KindFloat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ParseColumn("c", tt.raw)
			assert.Equal(t, tt.wantKind, c.Kind())
			assert.Equal(t, len(tt.raw), c.Len())
		})
	}
}

func TestColumn_Accessors(t *testing.T) {
	t.Parallel()

	ints := NewIntColumn("t", []int64{1718000000000000001})
	v, ok := ints.Int(0)
	require.True(t, ok)
	assert.Equal(t, int64(1718000000000000001), v, "int columns keep nanosecond precision")
	assert.Equal(t, "1718000000000000001", ints.Text(0))

	floats := NewFloatColumn("p", []float64{12.5, math.NaN()})
	assert.Equal(t, 12.5, floats.Float(0))
	assert.True(t, floats.IsSet(0))
	assert.False(t, floats.IsSet(1))
	assert.Equal(t, "", floats.Text(1))
	_, ok = floats.Int(1)
	assert.False(t, ok)
	v, ok = floats.Int(0)
	require.True(t, ok)
	assert.Equal(t, int64(12), v)

	texts := NewTextColumn("name", []string{"kernel", "3.5"})
	assert.True(t, math.IsNaN(texts.Float(0)))
	assert.Equal(t, 3.5, texts.Float(1))
	assert.False(t, texts.IsNumeric())

	renamed := floats.Renamed("q")
	assert.Equal(t, "q", renamed.Name())
	assert.Equal(t, "p", floats.Name())
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(NewIntColumn("a", []int64{1}), NewIntColumn("a", []int64{2}))
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = New(NewIntColumn("a", []int64{1}), NewIntColumn("b", []int64{1, 2}))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFrame_RequireAndSelect(t *testing.T) {
	t.Parallel()

	f := MustNew(
		NewIntColumn("timestamp_nanoseconds", []int64{1, 2}),
		NewFloatColumn("power_watts", []float64{10, 20}),
		NewTextColumn("host", []string{"a", "b"}),
	)

	err := f.Require("power_watts", "device_id", "timestamp_ms")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumns)
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"device_id", "timestamp_ms"}, missing.Missing)
	assert.Equal(t, []string{"timestamp_nanoseconds", "power_watts", "host"}, missing.Available)
	assert.Contains(t, err.Error(), "available columns [timestamp_nanoseconds, power_watts, host]")

	selected, err := f.Select("host", "power_watts")
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "power_watts"}, selected.ColumnNames())
	assert.Equal(t, 2, selected.Len())
	assert.Equal(t, 3, f.Width(), "select does not modify the source frame")
}

func TestFrame_WithReplacesOrAppends(t *testing.T) {
	t.Parallel()

	f := MustNew(NewIntColumn("a", []int64{1, 2}))

	appended, err := f.With(NewFloatColumn("b", []float64{0.5, 1.5}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, appended.ColumnNames())

	replaced, err := appended.With(NewTextColumn("a", []string{"x", "y"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, replaced.ColumnNames())
	c, _ := replaced.Column("a")
	assert.Equal(t, KindText, c.Kind())

	orig, _ := f.Column("a")
	assert.Equal(t, KindInt, orig.Kind())

	_, err = f.With(NewIntColumn("c", []int64{1}))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	fromEmpty, err := Empty().With(NewIntColumn("a", []int64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 3, fromEmpty.Len())
}

func TestConcat_UnionOfColumns(t *testing.T) {
	t.Parallel()

	first := MustNew(
		NewIntColumn("timestamp_nanoseconds", []int64{1, 2}),
		NewFloatColumn("power_watts", []float64{10, 20}),
	)
	second := MustNew(
		NewIntColumn("timestamp_nanoseconds", []int64{3}),
		NewIntColumn("device_id", []int64{0}),
		NewTextColumn("host", []string{"node1"}),
	)

	f := Concat(first, second, Empty())

	assert.Equal(t, []string{"timestamp_nanoseconds", "power_watts", "device_id", "host"}, f.ColumnNames())
	assert.Equal(t, 3, f.Len())

	ts, _ := f.Column("timestamp_nanoseconds")
	assert.Equal(t, KindInt, ts.Kind())
	v, _ := ts.Int(2)
	assert.Equal(t, int64(3), v)

	power, _ := f.Column("power_watts")
	assert.Equal(t, KindFloat, power.Kind())
	assert.False(t, power.IsSet(2))

	device, _ := f.Column("device_id")
	assert.Equal(t, KindFloat, device.Kind(), "int column missing from a part becomes float")
	assert.False(t, device.IsSet(0))
	assert.Equal(t, 0.0, device.Float(2))

	host, _ := f.Column("host")
	assert.Equal(t, []string{"", "", "node1"}, []string{host.Text(0), host.Text(1), host.Text(2)})
}

func TestConcat_NoParts(t *testing.T) {
	t.Parallel()

	f := Concat()
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Width())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := "\ufefftimestamp_nanoseconds,power_watts,name,name\n" +
		"1718000000000000000,10.5,a,b\n" +
		"1718000000000000100,,c\n"

	f, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"timestamp_nanoseconds", "power_watts", "name", "name.1"}, f.ColumnNames())
	assert.Equal(t, 2, f.Len())

	ts, _ := f.Column("timestamp_nanoseconds")
	assert.Equal(t, KindInt, ts.Kind())
	power, _ := f.Column("power_watts")
	assert.Equal(t, KindFloat, power.Kind())
	assert.False(t, power.IsSet(1))
	dup, _ := f.Column("name.1")
	assert.Equal(t, "", dup.Text(1), "short rows are padded")
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.ErrorIs(t, err, ErrMalformedRow)

	f, err := ReadCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
	assert.Equal(t, []string{"a", "b"}, f.ColumnNames())
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	f := MustNew(
		NewFloatColumn("timestamp_ms", []float64{5, 25.5}),
		NewFloatColumn("power_watts", []float64{15, math.NaN()}),
		NewTextColumn("name", []string{"k,1", "k2"}),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, f))
	assert.Equal(t, "timestamp_ms,power_watts,name\n5,15,\"k,1\"\n25.5,,k2\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, Empty()))
	assert.Equal(t, "\n", buf.String())
}
