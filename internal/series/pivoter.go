// Package series reshapes correlation records into a wide, time-indexed table.
package series

import (
	"slices"

	"power-analytics/internal/models"
)

const TimeColumn = "time_ns"

// Pivot builds one row per distinct timestamp (ascending) and one column per
// distinct region (byte-wise sorted). Cells without a record stay unset; a
// repeated (timestamp, region) pair keeps the last value and is counted in
// SeriesTable.Overwrites.
func Pivot(records []models.CorrelationRecord) *models.SeriesTable {
	timeSet := make(map[int64]struct{})
	regionSet := make(map[string]struct{})
	for _, r := range records {
		timeSet[r.Timestamp] = struct{}{}
		regionSet[r.Region] = struct{}{}
	}

	times := make([]int64, 0, len(timeSet))
	for t := range timeSet {
		times = append(times, t)
	}
	slices.Sort(times)
	regions := make([]string, 0, len(regionSet))
	for r := range regionSet {
		regions = append(regions, r)
	}
	slices.Sort(regions)

	rowOf := make(map[int64]int, len(times))
	for i, t := range times {
		rowOf[t] = i
	}
	colOf := make(map[string]int, len(regions))
	for i, r := range regions {
		colOf[r] = i
	}

	table := models.NewSeriesTable(TimeColumn, times, regions)
	for _, r := range records {
		table.Set(rowOf[r.Timestamp], colOf[r.Region], r.Value)
	}
	return table
}
