package tabular

import "strconv"

// Kind identifies what a Value holds.
type Kind uint8

const (
	// KindNull marks an absent cell.
	KindNull Kind = iota
	// KindString marks a text cell.
	KindString
	// KindNumber marks a numeric cell.
	KindNumber
)

// Value is a single cell. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Null returns an absent value.
func Null() Value {
	return Value{}
}

// String returns a text value. An empty string is still present, not null.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the cell is absent.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Text returns the string representation of the value.
// Null renders as "", numbers in their shortest decimal form (1, not 1.0).
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Text()
}
