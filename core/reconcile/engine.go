package reconcile

import (
	"sort"

	"referral-reconciler/core/tabular"
)

// FindMissingMembers returns the membership rows whose email is not in the
// advocate table, projected onto the import template. An empty result is a
// valid table with the full header and no rows.
func FindMissingMembers(members, advocates *tabular.Table) (*tabular.Table, error) {
	result, err := Reconcile(members, advocates)
	if err != nil {
		return nil, err
	}
	return result.Table()
}

// Reconcile validates both tables, builds the normalized advocate email set,
// and keeps every member whose normalized email is not in it. Membership order
// is preserved.
func Reconcile(members, advocates *tabular.Table) (*Result, error) {
	if err := validateColumns(members, advocates); err != nil {
		return nil, err
	}

	known := buildEmailSet(advocates)

	summary := Summary{
		TotalMembers:         members.Len(),
		AdvocateRows:         advocates.Len(),
		UniqueAdvocateEmails: len(known),
	}

	rows := make([]OutputRow, 0)
	for _, row := range members.Rows() {
		record := memberRecord(row)

		key := NormalizeEmail(record.Email)
		if key == "" {
			summary.BlankEmails++
		}

		if _, exists := known[key]; exists {
			summary.Matched++
			continue
		}
		rows = append(rows, project(record))
	}
	summary.Missing = len(rows)

	return &Result{Rows: rows, Summary: summary}, nil
}

// validateColumns checks both tables and reports every missing column at once.
func validateColumns(members, advocates *tabular.Table) error {
	var missing []MissingColumns

	if cols := missingColumns(members, RequiredMemberColumns()); len(cols) > 0 {
		missing = append(missing, MissingColumns{Table: TableMembership, Columns: cols})
	}
	if cols := missingColumns(advocates, RequiredAdvocateColumns()); len(cols) > 0 {
		missing = append(missing, MissingColumns{Table: TableAdvocate, Columns: cols})
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// missingColumns returns the required names t lacks, sorted.
func missingColumns(t *tabular.Table, required []string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// buildEmailSet returns the normalized advocate emails.
func buildEmailSet(advocates *tabular.Table) map[string]struct{} {
	emails, _ := advocates.Column(ColumnAdvocateEmail)

	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		set[NormalizeEmail(email)] = struct{}{}
	}
	return set
}

func memberRecord(row tabular.Row) MemberRecord {
	return MemberRecord{
		FirstName: row.Get(ColumnFirstName),
		LastName:  row.Get(ColumnLastName),
		Email:     row.Get(ColumnEmail),
	}
}

// project builds an output row from a member, copying sourced fields as-is.
func project(record MemberRecord) OutputRow {
	source := map[string]tabular.Value{
		ColumnFirstName: record.FirstName,
		ColumnLastName:  record.LastName,
		ColumnEmail:     record.Email,
	}

	schema := OutputSchema()
	values := make([]tabular.Value, len(schema))
	for i, f := range schema {
		if f.Source != "" {
			values[i] = source[f.Source]
			continue
		}
		values[i] = f.Default
	}
	return OutputRow{values: values}
}
