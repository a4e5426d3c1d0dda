// Package regions reads execution-region intervals and gives repeated region
// names unique, occurrence-numbered labels.
package regions

import (
	"strconv"

	"power-analytics/internal/models"
)

// Deduplicate labels the n-th occurrence of each name, in input order, "{name}_{n}"
// starting at 1. Input order and the other fields are preserved.
func Deduplicate(intervals []models.Interval) []models.Interval {
	counts := make(map[string]int, len(intervals))
	out := make([]models.Interval, len(intervals))
	for i, interval := range intervals {
		counts[interval.Name]++
		interval.UniqueName = interval.Name + "_" + strconv.Itoa(counts[interval.Name])
		out[i] = interval
	}
	return out
}
