package reconcile

import "referral-reconciler/core/tabular"

// Input column names. Matching is exact and case-sensitive.
const (
	ColumnFirstName     = "first_name"
	ColumnLastName      = "last_name"
	ColumnEmail         = "email"
	ColumnAdvocateEmail = "ADVOCATE_EMAIL"
)

// Output field names of the referrals import template. The stray spaces are
// part of the template and must be kept byte for byte.
const (
	FieldFirstName       = "First Name"
	FieldLastName        = "Last name "
	FieldEmail           = "Email"
	FieldPayoutThreshold = " Payout threshold"
	FieldCurrencyCode    = " Currency code"
	FieldMemberType      = "Member type"
	FieldCampaignSlug    = "Campaign slug  (optional)"
	// U+2019, as in the import template; not an ASCII apostrophe.
	FieldReferrerEmail   = "Referrer\u2019s email (optional)"
	FieldNote            = " note (optional)"
)

// Constant values written for every missing member.
const (
	DefaultPayoutThreshold = 1
	DefaultCurrencyCode    = "USD"
	MemberTypeAdvocate     = "ADVOCATE"
)

// Field describes one output column. Fields with a Source copy that column
// from the membership row unchanged; the rest always hold Default.
type Field struct {
	// Name is the exact output header.
	Name string

	// Source is the membership column copied into this field, if any.
	Source string

	// Default is the value used when Source is empty.
	Default tabular.Value
}

// OutputSchema returns the import template's fields in output order.
func OutputSchema() []Field {
	return []Field{
		{Name: FieldFirstName, Source: ColumnFirstName},
		{Name: FieldLastName, Source: ColumnLastName},
		{Name: FieldEmail, Source: ColumnEmail},
		{Name: FieldPayoutThreshold, Default: tabular.Number(DefaultPayoutThreshold)},
		{Name: FieldCurrencyCode, Default: tabular.String(DefaultCurrencyCode)},
		{Name: FieldMemberType, Default: tabular.String(MemberTypeAdvocate)},
		{Name: FieldCampaignSlug, Default: tabular.String("")},
		{Name: FieldReferrerEmail, Default: tabular.String("")},
		{Name: FieldNote, Default: tabular.String("")},
	}
}

// OutputColumns returns the output header in order.
func OutputColumns() []string {
	schema := OutputSchema()
	names := make([]string, len(schema))
	for i, f := range schema {
		names[i] = f.Name
	}
	return names
}

// RequiredMemberColumns lists the columns a membership export must have.
func RequiredMemberColumns() []string {
	return []string{ColumnFirstName, ColumnLastName, ColumnEmail}
}

// RequiredAdvocateColumns lists the columns an advocate export must have.
func RequiredAdvocateColumns() []string {
	return []string{ColumnAdvocateEmail}
}
