package correlators

import (
	"fmt"
	"sort"

	"power-analytics/internal/models"
)

type JoinStrategy string

const (
	JoinLinear  JoinStrategy = "linear"
	JoinIndexed JoinStrategy = "indexed"
)

// Joiner labels a timestamp with the first interval, in input order, that contains it.
type Joiner interface {
	Label(t int64) string
}

func NewJoiner(strategy JoinStrategy, intervals []models.Interval) (Joiner, error) {
	switch strategy {
	case JoinLinear, "":
		return NewLinearJoiner(intervals), nil
	case JoinIndexed:
		return NewIndexedJoiner(intervals), nil
	default:
		return nil, fmt.Errorf("unknown join strategy %q", strategy)
	}
}

type linearJoiner struct {
	intervals []models.Interval
}

// NewLinearJoiner scans every interval for every timestamp.
func NewLinearJoiner(intervals []models.Interval) Joiner {
	return &linearJoiner{intervals: intervals}
}

func (j *linearJoiner) Label(t int64) string {
	for _, interval := range j.intervals {
		if interval.Contains(t) {
			return interval.Label()
		}
	}
	return models.UnknownRegion
}

type indexedInterval struct {
	models.Interval
	order int
}

type indexedJoiner struct {
	byStart []indexedInterval
}

// NewIndexedJoiner sorts intervals by start once; each lookup binary-searches the
// intervals starting at or before t and keeps the lowest input position among
// those still open.
func NewIndexedJoiner(intervals []models.Interval) Joiner {
	byStart := make([]indexedInterval, len(intervals))
	for i, interval := range intervals {
		byStart[i] = indexedInterval{Interval: interval, order: i}
	}
	sort.SliceStable(byStart, func(a, b int) bool {
		return byStart[a].Start < byStart[b].Start
	})
	return &indexedJoiner{byStart: byStart}
}

func (j *indexedJoiner) Label(t int64) string {
	candidates := sort.Search(len(j.byStart), func(i int) bool {
		return j.byStart[i].Start > t
	})
	best := -1
	for i := 0; i < candidates; i++ {
		interval := &j.byStart[i]
		if interval.End < t {
			continue
		}
		if best == -1 || interval.order < j.byStart[best].order {
			best = i
		}
	}
	if best == -1 {
		return models.UnknownRegion
	}
	return j.byStart[best].Label()
}
