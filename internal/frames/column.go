package frames

import (
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// Column is an immutable, named, typed vector. Float columns use NaN for
// missing cells; int columns have no missing cells.
type Column struct {
	name   string
	kind   Kind
	ints   []int64
	floats []float64
	texts  []string
}

func NewIntColumn(name string, values []int64) *Column {
	return &Column{name: name, kind: KindInt, ints: values}
}

func NewFloatColumn(name string, values []float64) *Column {
	return &Column{name: name, kind: KindFloat, floats: values}
}

func NewTextColumn(name string, values []string) *Column {
	return &Column{name: name, kind: KindText, texts: values}
}

// ParseColumn infers the narrowest kind able to hold every raw cell:
// int when all non-empty cells are integers and none is empty, float when all
// non-empty cells are numbers, text otherwise.
func ParseColumn(name string, raw []string) *Column {
	allInt, allFloat, anyEmpty := true, true, false
	for _, cell := range raw {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			anyEmpty = true
			continue
		}
		if allInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				allInt = false
			}
		}
		if !allInt && allFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
				break
			}
		}
	}

	switch {
	case allInt && !anyEmpty && len(raw) > 0:
		ints := make([]int64, len(raw))
		for i, cell := range raw {
			ints[i], _ = strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		}
		return NewIntColumn(name, ints)
	case allFloat:
		floats := make([]float64, len(raw))
		for i, cell := range raw {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				floats[i] = math.NaN()
				continue
			}
			floats[i], _ = strconv.ParseFloat(cell, 64)
		}
		return NewFloatColumn(name, floats)
	default:
		texts := make([]string, len(raw))
		copy(texts, raw)
		return NewTextColumn(name, texts)
	}
}

func (c *Column) Name() string { return c.name }

func (c *Column) Kind() Kind { return c.kind }

func (c *Column) IsNumeric() bool { return c.kind != KindText }

func (c *Column) Len() int {
	switch c.kind {
	case KindInt:
		return len(c.ints)
	case KindFloat:
		return len(c.floats)
	default:
		return len(c.texts)
	}
}

// Float returns cell i as a float; NaN for missing and text cells.
func (c *Column) Float(i int) float64 {
	switch c.kind {
	case KindInt:
		return float64(c.ints[i])
	case KindFloat:
		return c.floats[i]
	default:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.texts[i]), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// Int returns cell i as an exact integer when the column holds one.
// Float cells are truncated toward zero; NaN and infinities are not set.
func (c *Column) Int(i int) (int64, bool) {
	switch c.kind {
	case KindInt:
		return c.ints[i], true
	default:
		v := c.Float(i)
		if math.IsNaN(v) || math.IsInf(v, 0) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	}
}

// Text returns cell i formatted the way it is written to CSV.
func (c *Column) Text(i int) string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.ints[i], 10)
	case KindFloat:
		return formatFloat(c.floats[i])
	default:
		return c.texts[i]
	}
}

// IsSet reports whether cell i holds a value.
func (c *Column) IsSet(i int) bool {
	switch c.kind {
	case KindInt:
		return true
	case KindFloat:
		return !math.IsNaN(c.floats[i])
	default:
		return c.texts[i] != ""
	}
}

// Renamed returns the same values under another name.
func (c *Column) Renamed(name string) *Column {
	renamed := *c
	renamed.name = name
	return &renamed
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
