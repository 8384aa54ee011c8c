// SPDX-License-Identifier: MIT
// Package points: ordered typed table over prediction points.

package points

import (
	"fmt"
	"strconv"
)

// Kind discriminates the storage type of a column.
type Kind int

const (
	// Float64 marks a column of float64 covariates.
	Float64 Kind = iota

	// Int64 marks a column of int64 values (typical for point ids).
	Int64

	// String marks a column of string labels.
	String
)

// String renders the kind name for error messages and logs.
func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case String:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// column is one named, typed slice. Exactly one of the three backing slices
// is non-nil, selected by kind.
type column struct {
	name   string
	kind   Kind
	floats []float64
	ints   []int64
	strs   []string
}

// Table is an ordered set of equal-length named columns.
// The zero value is not usable; construct via NewTable.
type Table struct {
	cols  []column       // insertion order
	index map[string]int // name → position in cols
}

// tableErrorf wraps an underlying sentinel with method and column context.
func tableErrorf(method, name string, err error) error {
	return fmt.Errorf("points.%s(%q): %w", method, name, err)
}

// NewTable returns an empty table with no columns and no rows.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Len returns the number of rows (the shared length of all columns).
// An empty table has zero rows.
// Complexity: O(1).
func (t *Table) Len() int {
	if t == nil || len(t.cols) == 0 {
		return 0
	}
	c := t.cols[0]
	switch c.kind {
	case Int64:
		return len(c.ints)
	case String:
		return len(c.strs)
	default:
		return len(c.floats)
	}
}

// Columns returns the column names in insertion order.
// Complexity: O(width).
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}

	return names
}

// Has reports whether a column with the given name exists.
// Complexity: O(1).
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]

	return ok
}

// KindOf returns the kind of the named column.
func (t *Table) KindOf(name string) (Kind, error) {
	c, err := t.lookup("KindOf", name)
	if err != nil {
		return 0, err
	}

	return c.kind, nil
}

// admit validates a prospective column before any mutation.
// Check order is fixed: nil → name → duplication → length.
func (t *Table) admit(method, name string, length int) error {
	if t == nil {
		return tableErrorf(method, name, ErrNilTable)
	}
	if name == "" {
		return tableErrorf(method, name, ErrEmptyName)
	}
	if _, dup := t.index[name]; dup {
		return tableErrorf(method, name, ErrDuplicateColumn)
	}
	if len(t.cols) > 0 && length != t.Len() {
		return fmt.Errorf("points.%s(%q): %d values, table has %d rows: %w",
			method, name, length, t.Len(), ErrColumnLength)
	}

	return nil
}

// AddFloat appends a float64 column. Values are copied.
// Complexity: O(rows).
func (t *Table) AddFloat(name string, values []float64) error {
	if err := t.admit("AddFloat", name, len(values)); err != nil {
		return err
	}
	v := make([]float64, len(values))
	copy(v, values)
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, column{name: name, kind: Float64, floats: v})

	return nil
}

// AddInt appends an int64 column. Values are copied.
// Complexity: O(rows).
func (t *Table) AddInt(name string, values []int64) error {
	if err := t.admit("AddInt", name, len(values)); err != nil {
		return err
	}
	v := make([]int64, len(values))
	copy(v, values)
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, column{name: name, kind: Int64, ints: v})

	return nil
}

// AddString appends a string column. Values are copied.
// Complexity: O(rows).
func (t *Table) AddString(name string, values []string) error {
	if err := t.admit("AddString", name, len(values)); err != nil {
		return err
	}
	v := make([]string, len(values))
	copy(v, values)
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, column{name: name, kind: String, strs: v})

	return nil
}

// lookup fetches a column by name or fails with ErrUnknownColumn.
func (t *Table) lookup(method, name string) (*column, error) {
	if t == nil {
		return nil, tableErrorf(method, name, ErrNilTable)
	}
	i, ok := t.index[name]
	if !ok {
		return nil, tableErrorf(method, name, ErrUnknownColumn)
	}

	return &t.cols[i], nil
}

// Float returns a copy of the named float64 column.
func (t *Table) Float(name string) ([]float64, error) {
	c, err := t.lookup("Float", name)
	if err != nil {
		return nil, err
	}
	if c.kind != Float64 {
		return nil, fmt.Errorf("points.Float(%q): column is %s: %w", name, c.kind, ErrColumnKind)
	}
	out := make([]float64, len(c.floats))
	copy(out, c.floats)

	return out, nil
}

// Int returns a copy of the named int64 column.
func (t *Table) Int(name string) ([]int64, error) {
	c, err := t.lookup("Int", name)
	if err != nil {
		return nil, err
	}
	if c.kind != Int64 {
		return nil, fmt.Errorf("points.Int(%q): column is %s: %w", name, c.kind, ErrColumnKind)
	}
	out := make([]int64, len(c.ints))
	copy(out, c.ints)

	return out, nil
}

// Strings returns a copy of the named string column.
func (t *Table) Strings(name string) ([]string, error) {
	c, err := t.lookup("Strings", name)
	if err != nil {
		return nil, err
	}
	if c.kind != String {
		return nil, fmt.Errorf("points.Strings(%q): column is %s: %w", name, c.kind, ErrColumnKind)
	}
	out := make([]string, len(c.strs))
	copy(out, c.strs)

	return out, nil
}

// Keys returns the canonical string form of an int64 or string column, for
// use as a join key. Float columns are refused with ErrColumnKind: float
// equality is not a sound join predicate.
// Complexity: O(rows).
func (t *Table) Keys(name string) ([]string, error) {
	c, err := t.lookup("Keys", name)
	if err != nil {
		return nil, err
	}
	switch c.kind {
	case Int64:
		out := make([]string, len(c.ints))
		for i, v := range c.ints {
			out[i] = strconv.FormatInt(v, 10)
		}
		return out, nil
	case String:
		out := make([]string, len(c.strs))
		copy(out, c.strs)
		return out, nil
	default:
		return nil, fmt.Errorf("points.Keys(%q): column is %s: %w", name, c.kind, ErrColumnKind)
	}
}

// Cell renders the value at (row, column name) as a string.
// Floats use strconv 'g' formatting, matching csvio output.
func (t *Table) Cell(row int, name string) (string, error) {
	c, err := t.lookup("Cell", name)
	if err != nil {
		return "", err
	}
	if row < 0 || row >= t.Len() {
		return "", fmt.Errorf("points.Cell(%d,%q): %d rows: %w", row, name, t.Len(), ErrRowRange)
	}
	switch c.kind {
	case Int64:
		return strconv.FormatInt(c.ints[row], 10), nil
	case String:
		return c.strs[row], nil
	default:
		return strconv.FormatFloat(c.floats[row], 'g', -1, 64), nil
	}
}

// Clone returns a deep copy of t; mutating the clone never touches t.
// Complexity: O(rows × width).
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := NewTable()
	for _, c := range t.cols {
		// Add* re-copies each backing slice, giving full independence.
		switch c.kind {
		case Int64:
			_ = out.AddInt(c.name, c.ints)
		case String:
			_ = out.AddString(c.name, c.strs)
		default:
			_ = out.AddFloat(c.name, c.floats)
		}
	}

	return out
}
