// Package tabular loads and writes small delimited-text tables.
//
// A Table is an ordered list of rows sharing one header. Cells are Values,
// an explicit nullable type holding a string or a number; empty CSV cells
// load as null so callers test presence with IsNull instead of comparing
// against sentinel strings.
//
// # Loading
//
//	t, err := tabular.Load("data/memberpress.csv", "utf-8")
//	var nf *tabular.NotFoundError
//	if errors.As(err, &nf) { ... }
//
// Load fails with a *NotFoundError when the path does not exist and with a
// *ParseError when the bytes cannot be decoded with the requested encoding or
// the content is not well-formed CSV (inconsistent field counts, unterminated
// quotes, missing header). Both match the ErrNotFound and ErrParse sentinels
// through errors.Is.
//
// # Encodings
//
// Encoding labels are resolved with golang.org/x/text (WHATWG and IANA
// names). UTF-8 input is validated rather than repaired.
package tabular
