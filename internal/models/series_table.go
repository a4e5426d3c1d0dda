package models

// Cell is one value of a SeriesTable. Unset cells mean "no sample attributed",
// which is distinct from a zero reading.
type Cell struct {
	Value float64
	Set   bool
}

// SeriesTable is the wide form of correlation records: one row per distinct
// timestamp (ascending), one column per region label (sorted).
type SeriesTable struct {
	TimeColumn string
	Times      []int64
	Regions    []string
	// Overwrites counts (timestamp, region) pairs written more than once.
	Overwrites int

	cells [][]Cell
}

func NewSeriesTable(timeColumn string, times []int64, regions []string) *SeriesTable {
	cells := make([][]Cell, len(times))
	for i := range cells {
		cells[i] = make([]Cell, len(regions))
	}
	return &SeriesTable{
		TimeColumn: timeColumn,
		Times:      times,
		Regions:    regions,
		cells:      cells,
	}
}

// Set stores v, replacing any earlier value, and reports whether one was replaced.
func (t *SeriesTable) Set(row, col int, v float64) bool {
	overwrote := t.cells[row][col].Set
	t.cells[row][col] = Cell{Value: v, Set: true}
	if overwrote {
		t.Overwrites++
	}
	return overwrote
}

func (t *SeriesTable) Cell(row, col int) Cell {
	return t.cells[row][col]
}

func (t *SeriesTable) Len() int {
	return len(t.Times)
}

func (t *SeriesTable) IsEmpty() bool {
	return t == nil || len(t.Times) == 0
}

// Columns returns the time column followed by the region columns.
func (t *SeriesTable) Columns() []string {
	columns := make([]string, 0, len(t.Regions)+1)
	columns = append(columns, t.TimeColumn)
	return append(columns, t.Regions...)
}
