// Package stats parses the key: value run statistics written next to the sample files.
package stats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"power-analytics/internal/models"
)

// UnparseableValueError reports a statistic whose value is not a number.
// It is a warning: the field is skipped, the rest of the file is kept.
type UnparseableValueError struct {
	Line  int
	Key   string
	Value string
}

func (e *UnparseableValueError) Error() string {
	return fmt.Sprintf("line %d: value %q of %q is not a number", e.Line, e.Value, e.Key)
}

// Record holds the statistics of one file in file order.
type Record struct {
	Keys   []string
	Values map[string]float64
}

func (r *Record) Len() int {
	return len(r.Keys)
}

// Parse skips the title line, then reads every "key: value" line, splitting on
// the first colon. Lines without a colon are ignored.
func Parse(r io.Reader) (*Record, []error, error) {
	record := &Record{Values: map[string]float64{}}
	var warnings []error

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			warnings = append(warnings, &UnparseableValueError{Line: line, Key: key, Value: value})
			continue
		}
		if _, seen := record.Values[key]; !seen {
			record.Keys = append(record.Keys, key)
		}
		record.Values[key] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, err
	}
	return record, warnings, nil
}

// Mean averages each statistic over the records that carry it, in order of first appearance.
func Mean(records []*Record) []models.Stat {
	var keys []string
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range records {
		for _, k := range r.Keys {
			if counts[k] == 0 {
				keys = append(keys, k)
			}
			sums[k] += r.Values[k]
			counts[k]++
		}
	}

	out := make([]models.Stat, len(keys))
	for i, k := range keys {
		out[i] = models.Stat{Name: k, Value: sums[k] / float64(counts[k])}
	}
	return out
}
