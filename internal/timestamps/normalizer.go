// Package timestamps resolves the canonical time field of a sample frame.
package timestamps

import (
	"errors"
	"fmt"
	"strings"

	"power-analytics/internal/frames"
)

const (
	FieldNanoseconds  = "timestamp_nanoseconds"
	FieldMilliseconds = "timestamp_ms"

	nanosPerMilli = 1_000_000.0
)

var ErrNoTimestamp = errors.New("no usable timestamp column")

// Strategy is one step of the timestamp fallback chain. Apply returns the
// (possibly extended) frame and the name of the resolved time field.
type Strategy struct {
	Name  string
	Apply func(f *frames.Frame) (*frames.Frame, string, bool)
}

// Preferred uses the named field as is.
func Preferred(field string) Strategy {
	return Strategy{
		Name: field,
		Apply: func(f *frames.Frame) (*frames.Frame, string, bool) {
			c, ok := f.Column(field)
			if !ok || !c.IsNumeric() {
				return nil, "", false
			}
			return f, field, true
		},
	}
}

// NanosecondsToMilliseconds derives timestamp_ms = timestamp_nanoseconds / 1e6.
func NanosecondsToMilliseconds() Strategy {
	return Strategy{
		Name: FieldNanoseconds,
		Apply: func(f *frames.Frame) (*frames.Frame, string, bool) {
			ns, ok := f.Column(FieldNanoseconds)
			if !ok || !ns.IsNumeric() {
				return nil, "", false
			}
			out, err := f.With(ToMilliseconds(ns, FieldMilliseconds))
			if err != nil {
				return nil, "", false
			}
			return out, FieldMilliseconds, true
		},
	}
}

// Strategies is the default chain: the preferred field, then the nanosecond fallback.
func Strategies(preferred string) []Strategy {
	if preferred == "" || preferred == FieldMilliseconds {
		return []Strategy{Preferred(FieldMilliseconds), NanosecondsToMilliseconds()}
	}
	return []Strategy{Preferred(preferred), NanosecondsToMilliseconds()}
}

// Normalize runs the default chain for preferred.
func Normalize(f *frames.Frame, preferred string) (*frames.Frame, string, error) {
	return Resolve(f, Strategies(preferred))
}

// Resolve returns the result of the first strategy that applies. The error lists
// every field tried and every field available.
func Resolve(f *frames.Frame, strategies []Strategy) (*frames.Frame, string, error) {
	tried := make([]string, 0, len(strategies))
	for _, s := range strategies {
		if out, field, ok := s.Apply(f); ok {
			return out, field, nil
		}
		tried = append(tried, s.Name)
	}
	return nil, "", fmt.Errorf("%w: tried [%s], available columns [%s]", ErrNoTimestamp,
		strings.Join(tried, ", "), strings.Join(f.ColumnNames(), ", "))
}

// ToMilliseconds converts a nanosecond column with IEEE-754 division.
func ToMilliseconds(ns *frames.Column, name string) *frames.Column {
	values := make([]float64, ns.Len())
	for i := range values {
		values[i] = ns.Float(i) / nanosPerMilli
	}
	return frames.NewFloatColumn(name, values)
}
