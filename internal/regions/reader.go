package regions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"power-analytics/internal/models"

	"github.com/jszwec/csvutil"
)

var (
	ErrMissingRegionColumns = errors.New("region file lacks name, start_time_ns or end_time_ns")
	ErrInvalidRegionRow     = errors.New("invalid region row")
)

// Nanos decodes integer or float formatted nanosecond cells. Integers are kept
// exact; float cells are truncated toward zero.
type Nanos int64

func (n *Nanos) UnmarshalCSV(data []byte) error {
	s := strings.TrimSpace(string(data))
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = Nanos(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("not a nanosecond timestamp: %q", s)
	}
	*n = Nanos(f)
	return nil
}

// regionRow is the shape shared by the NVML and Variorum region files.
// Extra columns such as duration_ns are ignored.
type regionRow struct {
	Name  string `csv:"name"`
	Start Nanos  `csv:"start_time_ns"`
	End   Nanos  `csv:"end_time_ns"`
}

// ReadIntervals decodes every region row in file order.
func ReadIntervals(r io.Reader) ([]models.Interval, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read region header: %w", err)
	}
	dec.DisallowMissingColumns = true
	if err := requireHeader(dec.Header()); err != nil {
		return nil, err
	}

	var intervals []models.Interval
	for {
		var row regionRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var missing *csvutil.MissingColumnsError
			if errors.As(err, &missing) {
				return nil, fmt.Errorf("%w: header [%s]", ErrMissingRegionColumns, strings.Join(dec.Header(), ", "))
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidRegionRow, err)
		}
		intervals = append(intervals, models.Interval{
			Name:  row.Name,
			Start: int64(row.Start),
			End:   int64(row.End),
		})
	}
	return intervals, nil
}

// requireHeader catches header-only files, where the decoder never gets to check columns.
func requireHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, required := range []string{"name", "start_time_ns", "end_time_ns"} {
		if !present[required] {
			return fmt.Errorf("%w: header [%s]", ErrMissingRegionColumns, strings.Join(header, ", "))
		}
	}
	return nil
}
