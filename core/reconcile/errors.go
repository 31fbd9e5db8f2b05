package reconcile

import (
	"errors"
	"strings"
)

// ErrSchema indicates that an input table lacks required columns.
var ErrSchema = errors.New("schema error")

// Table labels used in schema errors.
const (
	TableMembership = "membership"
	TableAdvocate   = "advocate"
)

// MissingColumns lists the required columns absent from one table.
type MissingColumns struct {
	// Table names the input, TableMembership or TableAdvocate.
	Table string

	// Columns holds the missing names, sorted.
	Columns []string
}

// SchemaError reports every required column missing from either input.
type SchemaError struct {
	Missing []MissingColumns
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		noun := "column"
		if len(m.Columns) > 1 {
			noun = "columns"
		}
		parts = append(parts, m.Table+" table missing required "+noun+": "+strings.Join(m.Columns, ", "))
	}
	return strings.Join(parts, "; ")
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// Columns returns every missing column name across both tables.
func (e *SchemaError) Columns() []string {
	var out []string
	for _, m := range e.Missing {
		out = append(out, m.Columns...)
	}
	return out
}
