// Package core provides the business logic for the parcel tracking lookup:
// field resolution over loosely-schemed spreadsheet rows, the in-memory
// dataset store, status normalization, and the tracking resolver that ties
// them together. The package has no HTTP or UI dependencies.
package core

import (
	"strings"

	"github.com/kitaygorod/tracker/internal/csv"
)

// NormalizeKey canonicalizes a header name for comparison: lowercase, with
// regular whitespace, underscores, and non-breaking spaces removed. The
// published sheets mix "Tracking_Number", "tracking number" and "трек номер"
// with NBSP characters pasted in from formatted documents; all collapse to
// the same key here.
func NormalizeKey(key string) string {
	key = strings.ToLower(key)
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch r {
		case ' ', '\t', '\n', '\r', '_', '\u00a0':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Field returns the row's value for the first candidate header name that
// matches a row header under NormalizeKey, or "" when none match.
func Field(row csv.Row, candidates []string) string {
	byKey := make(map[string]string, len(row.Headers))
	for _, h := range row.Headers {
		byKey[NormalizeKey(h)] = h
	}
	for _, candidate := range candidates {
		if original, ok := byKey[NormalizeKey(candidate)]; ok {
			return strings.TrimSpace(row.Get(original))
		}
	}
	return ""
}

// FieldFuzzy returns the value of the first row column, in the row's own
// column order, whose normalized header contains any of the normalized
// tokens as a substring. Used only as a fallback when Field finds nothing.
func FieldFuzzy(row csv.Row, tokens []string) string {
	normTokens := make([]string, len(tokens))
	for i, tok := range tokens {
		normTokens[i] = NormalizeKey(tok)
	}
	for _, h := range row.Headers {
		key := NormalizeKey(h)
		for _, tok := range normTokens {
			if tok != "" && strings.Contains(key, tok) {
				return strings.TrimSpace(row.Get(h))
			}
		}
	}
	return ""
}
