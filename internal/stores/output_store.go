package stores

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"

	"power-analytics/internal/frames"
	"power-analytics/internal/models"
	"power-analytics/internal/schemas"
	"power-analytics/internal/shared/filestorages"

	"github.com/jszwec/csvutil"
)

const (
	HeaderTimestamp = "timestamp_nanoseconds"
	HeaderRegion    = "region_name"
)

// OutputStore writes the derived artifacts. Every write replaces the previous
// file atomically.
//
//go:generate mockgen -source=output_store.go -destination=./mocks/output_store_mock.go -package=mocks
type OutputStore interface {
	PutFrame(ctx context.Context, key string, f *frames.Frame) error
	PutStats(ctx context.Context, key string, values []models.Stat) error
	// PutCorrelation writes the long form: timestamp, value under valueHeader, region.
	PutCorrelation(ctx context.Context, key, valueHeader string, records []models.CorrelationRecord) error
	// PutSeries writes the wide form; unset cells are empty.
	PutSeries(ctx context.Context, key string, table *models.SeriesTable) error
	PutSchema(ctx context.Context, key string, schema *schemas.Schema) error
}

type outputStore struct {
	fileStorage filestorages.FileStorage
}

func NewOutputStore(fileStorage filestorages.FileStorage) OutputStore {
	return &outputStore{fileStorage: fileStorage}
}

func (s *outputStore) PutFrame(ctx context.Context, key string, f *frames.Frame) error {
	var buf bytes.Buffer
	if err := frames.WriteCSV(&buf, f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.put(ctx, key, &buf)
}

func (s *outputStore) PutStats(ctx context.Context, key string, values []models.Stat) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)
	if len(values) == 0 {
		if err := enc.EncodeHeader(models.Stat{}); err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
	}
	if err := enc.Encode(values); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.put(ctx, key, &buf)
}

func (s *outputStore) PutCorrelation(ctx context.Context, key, valueHeader string, records []models.CorrelationRecord) error {
	timestamps := make([]int64, len(records))
	values := make([]float64, len(records))
	names := make([]string, len(records))
	for i, r := range records {
		timestamps[i] = r.Timestamp
		values[i] = r.Value
		names[i] = r.Region
	}
	f, err := frames.New(
		frames.NewIntColumn(HeaderTimestamp, timestamps),
		frames.NewFloatColumn(valueHeader, values),
		frames.NewTextColumn(HeaderRegion, names),
	)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", key, err)
	}
	return s.PutFrame(ctx, key, f)
}

func (s *outputStore) PutSeries(ctx context.Context, key string, table *models.SeriesTable) error {
	columns := make([]*frames.Column, 0, len(table.Regions)+1)
	columns = append(columns, frames.NewIntColumn(table.TimeColumn, table.Times))
	for col, region := range table.Regions {
		values := make([]float64, table.Len())
		for row := range values {
			cell := table.Cell(row, col)
			if !cell.Set {
				values[row] = math.NaN()
				continue
			}
			values[row] = cell.Value
		}
		columns = append(columns, frames.NewFloatColumn(region, values))
	}
	f, err := frames.New(columns...)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", key, err)
	}
	return s.PutFrame(ctx, key, f)
}

func (s *outputStore) PutSchema(ctx context.Context, key string, schema *schemas.Schema) error {
	return s.put(ctx, key, strings.NewReader(schema.Render()))
}

func (s *outputStore) put(ctx context.Context, key string, r io.Reader) error {
	_, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}
