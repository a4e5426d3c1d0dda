package aggregators

import (
	"fmt"
	"strings"

	"power-analytics/internal/frames"
	"power-analytics/internal/models"
	"power-analytics/internal/sources"
	"power-analytics/internal/timestamps"
	"power-analytics/internal/windows"
)

//go:generate mockgen -source=signal_reducer.go -destination=./mocks/signal_reducer_mock.go -package=mocks
type SignalReducer interface {
	// Reduce turns the concatenated input of a signal into its output frame.
	// Stats signals are not frame based and are rejected.
	Reduce(signal sources.Signal, window models.WindowSize, input *frames.Frame) (*frames.Frame, error)
}

type signalReducer struct{}

func NewSignalReducer() SignalReducer {
	return &signalReducer{}
}

func (r *signalReducer) Reduce(signal sources.Signal, window models.WindowSize, input *frames.Frame) (*frames.Frame, error) {
	if input.IsEmpty() {
		return frames.Empty(), nil
	}

	switch signal.Kind {
	case sources.KindWindow:
		normalized, timeField, err := timestamps.Normalize(input, signal.TimeColumn)
		if err != nil {
			return nil, err
		}
		return windows.Aggregate(normalized, timeField, window)

	case sources.KindDeviceWindow:
		normalized, timeField, err := timestamps.Normalize(input, signal.TimeColumn)
		if err != nil {
			return nil, err
		}
		out, err := windows.AggregateBy(normalized, timeField, window, signal.KeyColumn)
		if err != nil {
			return nil, err
		}
		if len(signal.Columns) == 0 {
			return out, nil
		}
		return out.Select(signal.Columns...)

	case sources.KindProjection:
		out := input
		for _, name := range signal.NanosecondColumns {
			ns, ok := out.Column(name)
			if !ok || !ns.IsNumeric() {
				continue
			}
			var err error
			out, err = out.With(timestamps.ToMilliseconds(ns, strings.TrimSuffix(name, "_ns")+"_ms"))
			if err != nil {
				return nil, err
			}
		}
		return out.Select(signal.Columns...)

	case sources.KindConcat:
		return input, nil

	default:
		return nil, fmt.Errorf("signal %s: kind %q is not frame based", signal.Name, signal.Kind)
	}
}
