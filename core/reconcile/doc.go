// Package reconcile finds members that are missing from the referrals platform.
//
// It compares a membership export (first_name, last_name, email) against an
// advocate export (ADVOCATE_EMAIL) and produces the rows to import, in the
// referrals platform's fixed nine-column template.
//
// # Steps
//
// 1. Column validation: both tables are checked and a *SchemaError lists
//    every required column missing from either side.
//
// 2. Normalization: emails on both sides are compared by NormalizeEmail
//    (null as "", trimmed, lowercased). Emitted values are never normalized.
//
// 3. Set difference: a member is missing iff its key is not in the advocate
//    key set. Membership order is kept.
//
// 4. Projection: each missing member becomes an OutputRow following
//    OutputSchema, three copied fields plus six constants.
//
// # Usage
//
//	missing, err := reconcile.FindMissingMembers(members, advocates)
//	if errors.Is(err, reconcile.ErrSchema) { ... }
//
//	// With counts
//	result, err := reconcile.Reconcile(members, advocates)
//	fmt.Println(result.Summary.Missing)
package reconcile
