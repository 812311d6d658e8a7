// =============================================================================
// Outreach Merger - Schema Normalizer Module
// =============================================================================
//
// This module maps raw column headers to canonical lookup keys so that
// template placeholders can match columns regardless of casing and of
// space/underscore separators. "First Name", "first_name" and "FIRSTNAME"
// all normalize to "firstname".
//
// The canonical key is used only for lookup; it is never displayed and never
// written to the output file.
//
// =============================================================================

package schema

import "strings"

// EmailKey is the canonical key that identifies the email column in the
// source spreadsheet. Any header variant ("Email", "E Mail", "e_mail")
// normalizes to this key.
const EmailKey = "email"

// Normalize derives the canonical lookup key for a header or placeholder
// name: the input is trimmed, lowercased, and stripped of all space and
// underscore characters.
//
// Normalize is deterministic: two inputs produce the same key if and only if
// they are equal after lowercasing and removing spaces and underscores.
func Normalize(header string) string {
	var b strings.Builder
	b.Grow(len(header))

	for _, r := range strings.TrimSpace(header) {
		if r == ' ' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// BuildKeyMap builds the mapping from canonical key to original column name
// for a table's headers. Placeholder lookups go through this map.
//
// If two distinct headers normalize to the same key, the later column wins.
// This is a documented policy, not an error: the importer preserves column
// order, so "later" is well defined and the outcome is deterministic.
func BuildKeyMap(headers []string) map[string]string {
	keys := make(map[string]string, len(headers))

	for _, header := range headers {
		keys[Normalize(header)] = header
	}

	return keys
}

// FindEmailColumn returns the original name of the email column, matching
// any casing/separator variant of "Email". The second return value reports
// whether such a column exists in the headers.
func FindEmailColumn(headers []string) (string, bool) {
	// Scan in column order so the last matching variant wins, consistent
	// with BuildKeyMap's collision policy.
	column := ""
	found := false

	for _, header := range headers {
		if Normalize(header) == EmailKey {
			column = header
			found = true
		}
	}

	return column, found
}
