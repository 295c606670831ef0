// Package normalize implements the text transform shared by the shard
// indexer and the query path. Both sides must apply the same transform:
// that symmetry is the only guarantee that a query term can find what
// indexing stored.
package normalize

import "strings"

// suffixExpansions maps postal street-suffix abbreviations to their full
// forms. Only the last token of a street name is ever substituted.
var suffixExpansions = map[string]string{
	"ST":   "STREET",
	"AVE":  "AVENUE",
	"RD":   "ROAD",
	"BLVD": "BOULEVARD",
	"DR":   "DRIVE",
	"LN":   "LANE",
	"CT":   "COURT",
	"PL":   "PLACE",
	"CIR":  "CIRCLE",
	"WAY":  "WAY",
	"PKWY": "PARKWAY",
	"TER":  "TERRACE",
	"SQ":   "SQUARE",
	"HWY":  "HIGHWAY",
	"EXPY": "EXPRESSWAY",
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// Normalize folds ASCII letters to upper case, trims leading and trailing
// whitespace, and collapses interior whitespace runs to a single space.
// Non-ASCII bytes pass through unchanged. Normalize is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			if b.Len() > 0 {
				pendingSpace = true
			}
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ExpandStreetSuffix normalizes s and rewrites its final token when it is a
// known street-suffix abbreviation ("PARK AVE" becomes "PARK AVENUE").
// Unknown suffixes are left alone. The result is again in normalized form.
func ExpandStreetSuffix(s string) string {
	normalized := Normalize(s)
	if normalized == "" {
		return normalized
	}

	idx := strings.LastIndexByte(normalized, ' ')
	last := normalized[idx+1:]
	full, ok := suffixExpansions[last]
	if !ok {
		return normalized
	}
	return normalized[:idx+1] + full
}
