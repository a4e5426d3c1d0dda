// Package windows collapses samples into fixed-width time windows.
package windows

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"power-analytics/internal/frames"
	"power-analytics/internal/models"
)

var ErrInvalidTimeColumn = errors.New("invalid time column")

type groupKey struct {
	bucket float64
	key    string
}

type group struct {
	groupKey
	firstRow int
	rows     []int
}

// Aggregate returns one row per window floor(t/w)*w, ordered by window. The time
// column holds the mean of the members' original times and every other numeric
// column its mean; text columns are dropped. Rows with a missing time are skipped.
func Aggregate(f *frames.Frame, timeColumn string, size models.WindowSize) (*frames.Frame, error) {
	return aggregate(f, timeColumn, size, "")
}

// AggregateBy groups by window and keyColumn; the key column is appended last and
// rows are ordered by window, then key.
func AggregateBy(f *frames.Frame, timeColumn string, size models.WindowSize, keyColumn string) (*frames.Frame, error) {
	if keyColumn == "" {
		return nil, errors.New("key column must be set")
	}
	return aggregate(f, timeColumn, size, keyColumn)
}

func aggregate(f *frames.Frame, timeColumn string, size models.WindowSize, keyColumn string) (*frames.Frame, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidWindowSize, float64(size))
	}
	if f.IsEmpty() {
		return frames.Empty(), nil
	}
	if err := f.Require(timeColumn); err != nil {
		return nil, err
	}
	times, _ := f.Column(timeColumn)
	if !times.IsNumeric() {
		return nil, fmt.Errorf("%w: %q is %s", ErrInvalidTimeColumn, timeColumn, times.Kind())
	}
	var keys *frames.Column
	if keyColumn != "" {
		if err := f.Require(keyColumn); err != nil {
			return nil, err
		}
		keys, _ = f.Column(keyColumn)
	}

	groups := groupRows(f.Len(), times, keys, size)

	var columns []*frames.Column
	columns = append(columns, meanColumn(timeColumn, times, groups))
	for _, c := range f.Columns() {
		if c.Name() == timeColumn || c.Name() == keyColumn || !c.IsNumeric() {
			continue
		}
		columns = append(columns, meanColumn(c.Name(), c, groups))
	}
	if keys != nil {
		columns = append(columns, keyColumnOf(keys, groups))
	}
	return frames.New(columns...)
}

func groupRows(n int, times, keys *frames.Column, size models.WindowSize) []*group {
	index := map[groupKey]*group{}
	var groups []*group
	for row := 0; row < n; row++ {
		t := times.Float(row)
		if math.IsNaN(t) {
			continue
		}
		k := groupKey{bucket: size.Bucket(t)}
		if keys != nil {
			k.key = keys.Text(row)
		}
		g, ok := index[k]
		if !ok {
			g = &group{groupKey: k, firstRow: row}
			index[k] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, row)
	}

	slices.SortStableFunc(groups, func(a, b *group) int {
		if c := cmp.Compare(a.bucket, b.bucket); c != 0 {
			return c
		}
		if keys == nil {
			return 0
		}
		if keys.IsNumeric() {
			return cmp.Compare(keys.Float(a.firstRow), keys.Float(b.firstRow))
		}
		return cmp.Compare(a.key, b.key)
	})
	return groups
}

func meanColumn(name string, c *frames.Column, groups []*group) *frames.Column {
	values := make([]float64, len(groups))
	for gi, g := range groups {
		sum, count := 0.0, 0
		for _, row := range g.rows {
			v := c.Float(row)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
		if count == 0 {
			values[gi] = math.NaN()
			continue
		}
		values[gi] = sum / float64(count)
	}
	return frames.NewFloatColumn(name, values)
}

// keyColumnOf keeps the key's original kind by taking each group's first row.
func keyColumnOf(keys *frames.Column, groups []*group) *frames.Column {
	switch keys.Kind() {
	case frames.KindInt:
		values := make([]int64, len(groups))
		for gi, g := range groups {
			values[gi], _ = keys.Int(g.firstRow)
		}
		return frames.NewIntColumn(keys.Name(), values)
	case frames.KindFloat:
		values := make([]float64, len(groups))
		for gi, g := range groups {
			values[gi] = keys.Float(g.firstRow)
		}
		return frames.NewFloatColumn(keys.Name(), values)
	default:
		values := make([]string, len(groups))
		for gi, g := range groups {
			values[gi] = keys.Text(g.firstRow)
		}
		return frames.NewTextColumn(keys.Name(), values)
	}
}
