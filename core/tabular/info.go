package tabular

// Info summarizes the shape of a table.
type Info struct {
	// Rows is the number of data rows.
	Rows int `json:"rows"`

	// Columns is the number of columns.
	Columns int `json:"columns"`

	// ColumnNames lists the columns in header order.
	ColumnNames []string `json:"column_names"`

	// MissingValues counts null cells per column.
	MissingValues map[string]int `json:"missing_values"`
}

// Describe returns basic statistics about t.
func Describe(t *Table) Info {
	missing := make(map[string]int, len(t.columns))
	for _, name := range t.columns {
		missing[name] = 0
	}
	for _, row := range t.rows {
		for j, v := range row {
			if v.IsNull() {
				missing[t.columns[j]]++
			}
		}
	}

	return Info{
		Rows:          len(t.rows),
		Columns:       len(t.columns),
		ColumnNames:   t.Columns(),
		MissingValues: missing,
	}
}
