package frames

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrMissingColumns  = errors.New("missing columns")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrLengthMismatch  = errors.New("column length mismatch")
)

// MissingColumnsError names the columns that were required and the ones the frame has.
type MissingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns [%s], available columns [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// Frame is an immutable record set: ordered, uniquely named columns of equal length.
// Every transformation returns a new Frame; columns are shared, never mutated.
type Frame struct {
	columns []*Column
	index   map[string]int
	rows    int
}

func New(columns ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if _, ok := f.index[c.Name()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, expected %d", ErrLengthMismatch, c.Name(), c.Len(), f.rows)
		}
		f.index[c.Name()] = i
		f.columns = append(f.columns, c)
	}
	return f, nil
}

// MustNew is New for statically known columns.
func MustNew(columns ...*Column) *Frame {
	f, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return f
}

func Empty() *Frame {
	return &Frame{index: map[string]int{}}
}

func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return f.rows
}

func (f *Frame) IsEmpty() bool {
	return f.Len() == 0
}

func (f *Frame) Width() int {
	if f == nil {
		return 0
	}
	return len(f.columns)
}

func (f *Frame) ColumnNames() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name()
	}
	return names
}

func (f *Frame) Columns() []*Column {
	if f == nil {
		return nil
	}
	return append([]*Column(nil), f.columns...)
}

func (f *Frame) Column(name string) (*Column, bool) {
	if f == nil {
		return nil, false
	}
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.columns[i], true
}

func (f *Frame) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := f.Column(name); !ok {
			return false
		}
	}
	return true
}

// Require returns a *MissingColumnsError unless every name is present.
func (f *Frame) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if !f.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing, Available: f.ColumnNames()}
	}
	return nil
}

// With returns a frame where c replaces the column of the same name, or is appended.
func (f *Frame) With(c *Column) (*Frame, error) {
	columns := f.Columns()
	if f != nil {
		if i, ok := f.index[c.Name()]; ok {
			columns[i] = c
			return New(columns...)
		}
	}
	return New(append(columns, c)...)
}

// Select returns the named columns in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	if err := f.Require(names...); err != nil {
		return nil, err
	}
	columns := make([]*Column, len(names))
	for i, name := range names {
		columns[i], _ = f.Column(name)
	}
	return New(columns...)
}

// Concat stacks frames vertically over the union of their columns, in order of first
// appearance. Cells a part does not have are missing: NaN in numeric results,
// empty in text results. Int columns stay int only when every part has them as int.
func Concat(parts ...*Frame) *Frame {
	var names []string
	seen := map[string]bool{}
	total := 0
	for _, p := range parts {
		total += p.Len()
		for _, name := range p.ColumnNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return Empty()
	}

	columns := make([]*Column, len(names))
	for ci, name := range names {
		kind := KindInt
		for _, p := range parts {
			if p.Len() == 0 {
				continue
			}
			c, ok := p.Column(name)
			switch {
			case !ok:
				kind = max(kind, KindFloat)
			default:
				kind = max(kind, c.Kind())
			}
		}
		columns[ci] = concatColumn(name, kind, total, parts)
	}
	return MustNew(columns...)
}

func concatColumn(name string, kind Kind, total int, parts []*Frame) *Column {
	switch kind {
	case KindInt:
		values := make([]int64, 0, total)
		for _, p := range parts {
			if c, ok := p.Column(name); ok {
				values = append(values, c.ints...)
			}
		}
		return NewIntColumn(name, values)
	case KindFloat:
		values := make([]float64, 0, total)
		for _, p := range parts {
			c, ok := p.Column(name)
			for i := 0; i < p.Len(); i++ {
				if ok {
					values = append(values, c.Float(i))
				} else {
					values = append(values, math.NaN())
				}
			}
		}
		return NewFloatColumn(name, values)
	default:
		values := make([]string, 0, total)
		for _, p := range parts {
			c, ok := p.Column(name)
			for i := 0; i < p.Len(); i++ {
				if ok {
					values = append(values, c.Text(i))
				} else {
					values = append(values, "")
				}
			}
		}
		return NewTextColumn(name, values)
	}
}
