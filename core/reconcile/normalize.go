package reconcile

import (
	"strings"

	"referral-reconciler/core/tabular"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeEmail returns the comparison key for an email cell: null becomes
// "", then the text is trimmed and lowercased. The key is only used for
// matching; emitted rows keep the original value.
func NormalizeEmail(v tabular.Value) string {
	return normalizeText(v.Text())
}

func normalizeText(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
