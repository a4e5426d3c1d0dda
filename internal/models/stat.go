package models

// Stat is one averaged run statistic.
type Stat struct {
	Name  string  `csv:"stat_name"`
	Value float64 `csv:"value"`
}
