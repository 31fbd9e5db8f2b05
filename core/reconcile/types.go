package reconcile

import "referral-reconciler/core/tabular"

// MemberRecord is the part of a membership row the reconciler reads.
type MemberRecord struct {
	FirstName tabular.Value
	LastName  tabular.Value
	Email     tabular.Value
}

// OutputRow is one line of the import file, with values in OutputSchema order.
type OutputRow struct {
	values []tabular.Value
}

// Get returns the value of the named output field, or null for unknown names.
func (r OutputRow) Get(field string) tabular.Value {
	for i, f := range OutputSchema() {
		if f.Name == field {
			return r.values[i]
		}
	}
	return tabular.Null()
}

// Values returns a copy of the row's values in output order.
func (r OutputRow) Values() []tabular.Value {
	return append([]tabular.Value(nil), r.values...)
}

// FirstName returns the member's first name as exported.
func (r OutputRow) FirstName() tabular.Value {
	return r.Get(FieldFirstName)
}

// LastName returns the member's last name as exported.
func (r OutputRow) LastName() tabular.Value {
	return r.Get(FieldLastName)
}

// Email returns the member's email as exported.
func (r OutputRow) Email() tabular.Value {
	return r.Get(FieldEmail)
}

// Summary provides aggregate counts for a reconciliation run.
type Summary struct {
	// TotalMembers is the number of membership rows.
	TotalMembers int `json:"total_members"`

	// AdvocateRows is the number of advocate rows.
	AdvocateRows int `json:"advocate_rows"`

	// UniqueAdvocateEmails is the size of the normalized advocate email set.
	UniqueAdvocateEmails int `json:"unique_advocate_emails"`

	// Matched counts members whose email is already an advocate.
	Matched int `json:"matched"`

	// Missing counts members absent from the advocate list.
	Missing int `json:"missing"`

	// BlankEmails counts members whose email normalizes to "".
	BlankEmails int `json:"blank_emails"`
}

// Result holds the missing members and the run's summary.
type Result struct {
	// Rows contains one output row per missing member, in membership order.
	Rows []OutputRow `json:"-"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Table converts the rows into a table with the output header.
func (r *Result) Table() (*tabular.Table, error) {
	values := make([][]tabular.Value, len(r.Rows))
	for i, row := range r.Rows {
		values[i] = row.Values()
	}
	return tabular.NewTable(OutputColumns(), values)
}
