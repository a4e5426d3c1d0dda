package correlators

import (
	"fmt"
	"math"
	"strings"

	"power-analytics/internal/frames"
)

// ColumnStrategy picks the value column of a sample frame.
type ColumnStrategy struct {
	Name    string
	Resolve func(f *frames.Frame) (string, bool)
}

// ExactColumn selects a known column name.
func ExactColumn(name string) ColumnStrategy {
	return ColumnStrategy{
		Name: name,
		Resolve: func(f *frames.Frame) (string, bool) {
			return name, f.Has(name)
		},
	}
}

// KeywordColumn selects the first column whose lower-cased name contains every keyword.
func KeywordColumn(keywords ...string) ColumnStrategy {
	return ColumnStrategy{
		Name: "*" + strings.Join(keywords, "*") + "*",
		Resolve: func(f *frames.Frame) (string, bool) {
			for _, name := range f.ColumnNames() {
				lower := strings.ToLower(name)
				matched := true
				for _, k := range keywords {
					if !strings.Contains(lower, strings.ToLower(k)) {
						matched = false
						break
					}
				}
				if matched {
					return name, true
				}
			}
			return "", false
		},
	}
}

// ValueStrategies is the explicit column followed by the domain/unit keyword match.
func ValueStrategies(explicit, domain, unit string) []ColumnStrategy {
	var strategies []ColumnStrategy
	if explicit != "" {
		strategies = append(strategies, ExactColumn(explicit))
	}
	if domain != "" && unit != "" {
		strategies = append(strategies, KeywordColumn(domain, unit))
	}
	return strategies
}

// TimestampField is a sample time column and its width in nanoseconds.
type TimestampField struct {
	Name         string
	NanosPerUnit int64
}

var (
	EpochMilliseconds    = TimestampField{Name: "timestamp_system_epoch_ms", NanosPerUnit: 1_000_000}
	NativeNanoseconds    = TimestampField{Name: "timestamp_nanoseconds", NanosPerUnit: 1}
	RelativeMilliseconds = TimestampField{Name: "time_relative_ms", NanosPerUnit: 1_000_000}
)

// DefaultTimestampFields prefers absolute epoch milliseconds over native nanoseconds.
func DefaultTimestampFields() []TimestampField {
	return []TimestampField{EpochMilliseconds, NativeNanoseconds}
}

func (t TimestampField) String() string {
	if t.NanosPerUnit == 1 {
		return t.Name
	}
	return fmt.Sprintf("%s*%d", t.Name, t.NanosPerUnit)
}

// Nanoseconds converts cell i; integer cells multiply exactly, float cells are
// scaled then truncated toward zero. Results outside int64 are rejected.
func (t TimestampField) Nanoseconds(c *frames.Column, i int) (int64, bool) {
	if c.Kind() == frames.KindInt {
		v, _ := c.Int(i)
		if v > math.MaxInt64/t.NanosPerUnit || v < math.MinInt64/t.NanosPerUnit {
			return 0, false
		}
		return v * t.NanosPerUnit, true
	}
	v := c.Float(i) * float64(t.NanosPerUnit)
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, false
	}
	return int64(v), true
}

func resolveValueColumn(f *frames.Frame, strategies []ColumnStrategy) (string, bool) {
	for _, s := range strategies {
		if name, ok := s.Resolve(f); ok {
			return name, true
		}
	}
	return "", false
}

func resolveTimestampField(f *frames.Frame, fields []TimestampField) (TimestampField, *frames.Column, bool) {
	for _, field := range fields {
		if c, ok := f.Column(field.Name); ok && c.IsNumeric() {
			return field, c, true
		}
	}
	return TimestampField{}, nil, false
}
