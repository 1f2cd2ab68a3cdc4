package gedcom

import (
	"strings"
	"time"
)

// GEDCOM date phrases carry qualifiers (ABT 1950, BEF 12 JUN 1900) and
// ranges (BET 1900 AND 1910). The normalizer strips the qualifiers,
// reduces ranges to their first bound, and tries a fixed set of layouts.
// Anything that still does not parse yields nil rather than an error so
// a bad date can never corrupt an otherwise valid record.

var dateQualifiers = []string{"ABT", "EST", "CAL", "BEF", "AFT", "FROM", "TO", "INT"}

var dateLayouts = []string{
	"2 Jan 2006",
	"Jan 2006",
	"2006",
	"2006-01-02",
	"2006-01",
}

// NormalizeDate converts a GEDCOM date phrase into a time value, or nil
// when the input is empty or unparseable. It never returns an error.
func NormalizeDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	upper := strings.ToUpper(s)
	for _, q := range dateQualifiers {
		upper = strings.TrimSpace(strings.TrimPrefix(upper, q+" "))
	}

	// "BET 1900 AND 1910" reduces to its first bound.
	if strings.HasPrefix(upper, "BET ") {
		upper = strings.TrimPrefix(upper, "BET ")
		if i := strings.Index(upper, " AND "); i >= 0 {
			upper = upper[:i]
		}
		upper = strings.TrimSpace(upper)
	}

	candidate := canonicalizeMonths(upper)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return &t
		}
	}
	return nil
}

// canonicalizeMonths rewrites month tokens (JUN, june) into the Jan form
// time.Parse expects.
func canonicalizeMonths(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if len(f) != 3 {
			continue
		}
		title := strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
		if _, err := time.Parse("Jan", title); err == nil {
			fields[i] = title
		}
	}
	return strings.Join(fields, " ")
}
