package stores

import (
	"context"
	"errors"
	"fmt"
	"io"

	"power-analytics/internal/frames"
	"power-analytics/internal/models"
	"power-analytics/internal/regions"
	"power-analytics/internal/shared/filestorages"
	"power-analytics/internal/shared/loggers"
	"power-analytics/internal/stats"
)

// InputStore reads the files produced by the telemetry tools.
//
//go:generate mockgen -source=input_store.go -destination=./mocks/input_store_mock.go -package=mocks
type InputStore interface {
	// List returns the sorted keys below dir whose base name matches pattern.
	List(ctx context.Context, dir, pattern string) ([]string, error)
	// LoadFrame reads every file and concatenates the rows in key order.
	// Files without a header row are skipped.
	LoadFrame(ctx context.Context, keys []string) (*frames.Frame, error)
	// LoadIntervals reads the regions of every file in key order.
	LoadIntervals(ctx context.Context, keys []string) ([]models.Interval, error)
	// LoadStats parses every .dat file. Unreadable files are skipped with a warning.
	LoadStats(ctx context.Context, keys []string) ([]*stats.Record, error)
}

type inputStore struct {
	fileStorage filestorages.FileStorage
}

func NewInputStore(fileStorage filestorages.FileStorage) InputStore {
	return &inputStore{fileStorage: fileStorage}
}

func (s *inputStore) List(ctx context.Context, dir, pattern string) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s/%s: %w", dir, pattern, err)
	}
	return keys, nil
}

func (s *inputStore) LoadFrame(ctx context.Context, keys []string) (*frames.Frame, error) {
	logger := loggers.Ctx(ctx)
	parts := make([]*frames.Frame, 0, len(keys))
	for _, key := range keys {
		var f *frames.Frame
		err := s.read(ctx, key, func(r io.Reader) error {
			var err error
			f, err = frames.ReadCSV(r)
			return err
		})
		if errors.Is(err, frames.ErrNoHeader) {
			logger.Warn().Str(loggers.FieldFileKey, key).Msg("skipping file without header row")
			continue
		}
		if err != nil {
			return nil, err
		}
		logger.Debug().Str(loggers.FieldFileKey, key).Int(loggers.FieldRows, f.Len()).Msg("loaded file")
		parts = append(parts, f)
	}
	return frames.Concat(parts...), nil
}

func (s *inputStore) LoadIntervals(ctx context.Context, keys []string) ([]models.Interval, error) {
	var intervals []models.Interval
	for _, key := range keys {
		err := s.read(ctx, key, func(r io.Reader) error {
			decoded, err := regions.ReadIntervals(r)
			intervals = append(intervals, decoded...)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return intervals, nil
}

func (s *inputStore) LoadStats(ctx context.Context, keys []string) ([]*stats.Record, error) {
	logger := loggers.Ctx(ctx)
	records := make([]*stats.Record, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var record *stats.Record
		err := s.read(ctx, key, func(r io.Reader) error {
			var warnings []error
			var err error
			record, warnings, err = stats.Parse(r)
			for _, w := range warnings {
				logger.Warn().Err(w).Str(loggers.FieldFileKey, key).Msg("skipping unparseable statistic")
			}
			return err
		})
		if err != nil {
			logger.Warn().Err(err).Str(loggers.FieldFileKey, key).Msg("skipping unreadable stats file")
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *inputStore) read(ctx context.Context, key string, decode func(io.Reader) error) error {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer readCloser.Close()

	if err := decode(readCloser); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}
