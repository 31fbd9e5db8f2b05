package tabular

import "fmt"

// Table is an in-memory, column-ordered set of rows.
// Every row holds exactly one value per column.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// NewTable builds a table from a header and positional rows.
// It fails on empty or duplicate column names and on rows whose width
// does not match the header.
func NewTable(columns []string, rows [][]Value) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d", i+1, len(row), len(columns))
		}
	}

	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    rows,
	}, nil
}

// Columns returns a copy of the column names in header order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the table has a column with exactly this name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return Row{index: t.index, values: t.rows[i]}
}

// Rows returns every row in file order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// Column returns the values of one column in row order.
func (t *Table) Column(name string) ([]Value, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, true
}

// Row is a read-only view of one table row.
type Row struct {
	index  map[string]int
	values []Value
}

// Get returns the value in the named column, or null if there is no such column.
func (r Row) Get(column string) Value {
	idx, ok := r.index[column]
	if !ok {
		return Null()
	}
	return r.values[idx]
}

// Values returns a copy of the row's values in column order.
func (r Row) Values() []Value {
	return append([]Value(nil), r.values...)
}
