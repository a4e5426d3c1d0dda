// Package correlators attributes power/energy samples to the execution regions
// they fall into and builds the per-region time series.
package correlators

import (
	"errors"
	"fmt"
	"strings"

	"power-analytics/internal/frames"
	"power-analytics/internal/models"
)

var (
	ErrNoValueColumn     = errors.New("no value column")
	ErrNoTimestampColumn = errors.New("no timestamp column")
)

type Options struct {
	ValueStrategies []ColumnStrategy
	TimestampFields []TimestampField
	Join            JoinStrategy
}

// Correlation is the long-form join result.
type Correlation struct {
	Records        []models.CorrelationRecord
	ValueColumn    string
	TimestampField TimestampField
	// Skipped counts samples without a usable timestamp.
	Skipped int
}

// Matched counts records attributed to a region.
func (c *Correlation) Matched() int {
	matched := 0
	for _, r := range c.Records {
		if !r.IsUnknown() {
			matched++
		}
	}
	return matched
}

type Correlator interface {
	// Correlate emits one record per sample with a usable timestamp, in sample order.
	// intervals must already carry unique labels.
	Correlate(samples *frames.Frame, intervals []models.Interval) (*Correlation, error)
}

type correlator struct {
	opts Options
}

func NewCorrelator(opts Options) (Correlator, error) {
	if len(opts.TimestampFields) == 0 {
		opts.TimestampFields = DefaultTimestampFields()
	}
	if _, err := NewJoiner(opts.Join, nil); err != nil {
		return nil, err
	}
	return &correlator{opts: opts}, nil
}

func (c *correlator) Correlate(samples *frames.Frame, intervals []models.Interval) (*Correlation, error) {
	valueName, ok := resolveValueColumn(samples, c.opts.ValueStrategies)
	if !ok {
		return nil, fmt.Errorf("%w: tried [%s], available columns [%s]", ErrNoValueColumn,
			strings.Join(strategyNames(c.opts.ValueStrategies), ", "), strings.Join(samples.ColumnNames(), ", "))
	}
	field, times, ok := resolveTimestampField(samples, c.opts.TimestampFields)
	if !ok {
		return nil, fmt.Errorf("%w: tried [%s], available columns [%s]", ErrNoTimestampColumn,
			strings.Join(fieldNames(c.opts.TimestampFields), ", "), strings.Join(samples.ColumnNames(), ", "))
	}
	values, _ := samples.Column(valueName)

	joiner, err := NewJoiner(c.opts.Join, intervals)
	if err != nil {
		return nil, err
	}

	result := &Correlation{
		Records:        make([]models.CorrelationRecord, 0, samples.Len()),
		ValueColumn:    valueName,
		TimestampField: field,
	}
	for i := 0; i < samples.Len(); i++ {
		ts, ok := field.Nanoseconds(times, i)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, models.CorrelationRecord{
			Timestamp: ts,
			Value:     values.Float(i),
			Region:    joiner.Label(ts),
		})
	}
	return result, nil
}

func strategyNames(strategies []ColumnStrategy) []string {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name
	}
	return names
}

func fieldNames(fields []TimestampField) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return names
}
